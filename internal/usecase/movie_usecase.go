package usecase

import (
	"fmt"
	"io"
	"time"

	"streamhub/internal/entity"
	"streamhub/internal/repo/persistent"
	"streamhub/pkg/logger"
	"streamhub/pkg/s3"
)

type MovieUpdate struct {
	Title         *string
	YearPublished *int
	DirectorID    *string
	GenreID       *string
}

type MovieUseCase interface {
	CreateMovie(movie *entity.Movie) error
	ListMovies(skip, limit int) ([]*entity.Movie, error)
	GetMovie(id string) (*entity.Movie, error)
	SearchMoviesByTitle(title string) ([]*entity.Movie, error)
	GetMoviesByDirector(directorID string) ([]*entity.Movie, error)
	GetMoviesByGenre(genreID string) ([]*entity.Movie, error)
	GetLatestMovies(days int) ([]*entity.Movie, error)
	AddActorToMovie(movieID, actorID string) error
	RemoveActorFromMovie(movieID, actorID string) error
	UploadPoster(movieID string, file io.Reader, contentType string) (*entity.Movie, error)
	UpdateMovie(id string, update MovieUpdate) (*entity.Movie, error)
	DeleteMovie(id string) error
}

type movieUseCase struct {
	movieRepo persistent.MovieRepository
	actorRepo persistent.ActorRepository
	s3Client  *s3.Client
	logger    *logger.Logger
}

func NewMovieUseCase(
	movieRepo persistent.MovieRepository,
	actorRepo persistent.ActorRepository,
	s3Client *s3.Client,
	logger *logger.Logger,
) MovieUseCase {
	return &movieUseCase{
		movieRepo: movieRepo,
		actorRepo: actorRepo,
		s3Client:  s3Client,
		logger:    logger,
	}
}

func (uc *movieUseCase) CreateMovie(movie *entity.Movie) error {
	return uc.movieRepo.Create(movie)
}

func (uc *movieUseCase) ListMovies(skip, limit int) ([]*entity.Movie, error) {
	return uc.movieRepo.GetMany(skip, limit)
}

func (uc *movieUseCase) GetMovie(id string) (*entity.Movie, error) {
	return uc.movieRepo.GetByID(id)
}

func (uc *movieUseCase) SearchMoviesByTitle(title string) ([]*entity.Movie, error) {
	return uc.movieRepo.GetByTitle(title)
}

func (uc *movieUseCase) GetMoviesByDirector(directorID string) ([]*entity.Movie, error) {
	return uc.movieRepo.GetByDirector(directorID)
}

func (uc *movieUseCase) GetMoviesByGenre(genreID string) ([]*entity.Movie, error) {
	return uc.movieRepo.GetByGenre(genreID)
}

func (uc *movieUseCase) GetLatestMovies(days int) ([]*entity.Movie, error) {
	if days <= 0 {
		days = 30
	}
	cutoff := time.Now().AddDate(0, 0, -days)
	return uc.movieRepo.GetLatest(cutoff)
}

func (uc *movieUseCase) AddActorToMovie(movieID, actorID string) error {
	if _, err := uc.movieRepo.GetByID(movieID); err != nil {
		return err
	}
	if _, err := uc.actorRepo.GetByID(actorID); err != nil {
		return err
	}
	return uc.movieRepo.AddActor(movieID, actorID)
}

func (uc *movieUseCase) RemoveActorFromMovie(movieID, actorID string) error {
	if _, err := uc.movieRepo.GetByID(movieID); err != nil {
		return err
	}
	return uc.movieRepo.RemoveActor(movieID, actorID)
}

// UploadPoster stores the artwork under a key derived from the movie id and
// saves the resulting URL on the movie.
func (uc *movieUseCase) UploadPoster(movieID string, file io.Reader, contentType string) (*entity.Movie, error) {
	movie, err := uc.movieRepo.GetByID(movieID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("posters/movies/%s", movieID)
	url, err := uc.s3Client.UploadFile(key, file, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload poster for movie %s: %v", movieID, err)
		return nil, err
	}

	movie.PosterURL = url
	if err := uc.movieRepo.Update(movie); err != nil {
		return nil, err
	}
	return movie, nil
}

func (uc *movieUseCase) UpdateMovie(id string, update MovieUpdate) (*entity.Movie, error) {
	movie, err := uc.movieRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		movie.Title = *update.Title
	}
	if update.YearPublished != nil {
		movie.YearPublished = *update.YearPublished
	}
	if update.DirectorID != nil {
		movie.DirectorID = *update.DirectorID
	}
	if update.GenreID != nil {
		movie.GenreID = *update.GenreID
	}

	if err := uc.movieRepo.Update(movie); err != nil {
		return nil, err
	}
	return uc.movieRepo.GetByID(id)
}

func (uc *movieUseCase) DeleteMovie(id string) error {
	return uc.movieRepo.Delete(id)
}
