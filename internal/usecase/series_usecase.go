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

type SeriesUpdate struct {
	Title         *string
	Description   *string
	YearPublished *int
	DirectorID    *string
	GenreID       *string
}

type SeriesUseCase interface {
	CreateSeries(series *entity.Series) error
	ListSeries(skip, limit int) ([]*entity.Series, error)
	GetSeries(id string) (*entity.Series, error)
	SearchSeriesByTitle(title string) ([]*entity.Series, error)
	GetSeriesByDirector(directorID string) ([]*entity.Series, error)
	GetSeriesByGenre(genreID string) ([]*entity.Series, error)
	GetLatestSeries(days int) ([]*entity.Series, error)
	AddActorToSeries(seriesID, actorID string) error
	RemoveActorFromSeries(seriesID, actorID string) error
	UploadPoster(seriesID string, file io.Reader, contentType string) (*entity.Series, error)
	UpdateSeries(id string, update SeriesUpdate) (*entity.Series, error)
	DeleteSeries(id string) error

	CreateEpisode(episode *entity.Episode) error
	GetEpisode(id string) (*entity.Episode, error)
	ListEpisodes(seriesID string) ([]*entity.Episode, error)
	SearchEpisodesByName(name string) ([]*entity.Episode, error)
	RenameEpisode(id, name string) (*entity.Episode, error)
	DeleteEpisode(id string) error
}

type seriesUseCase struct {
	seriesRepo  persistent.SeriesRepository
	episodeRepo persistent.EpisodeRepository
	actorRepo   persistent.ActorRepository
	s3Client    *s3.Client
	logger      *logger.Logger
}

func NewSeriesUseCase(
	seriesRepo persistent.SeriesRepository,
	episodeRepo persistent.EpisodeRepository,
	actorRepo persistent.ActorRepository,
	s3Client *s3.Client,
	logger *logger.Logger,
) SeriesUseCase {
	return &seriesUseCase{
		seriesRepo:  seriesRepo,
		episodeRepo: episodeRepo,
		actorRepo:   actorRepo,
		s3Client:    s3Client,
		logger:      logger,
	}
}

func (uc *seriesUseCase) CreateSeries(series *entity.Series) error {
	return uc.seriesRepo.Create(series)
}

func (uc *seriesUseCase) ListSeries(skip, limit int) ([]*entity.Series, error) {
	return uc.seriesRepo.GetMany(skip, limit)
}

func (uc *seriesUseCase) GetSeries(id string) (*entity.Series, error) {
	return uc.seriesRepo.GetByID(id)
}

func (uc *seriesUseCase) SearchSeriesByTitle(title string) ([]*entity.Series, error) {
	return uc.seriesRepo.GetByTitle(title)
}

func (uc *seriesUseCase) GetSeriesByDirector(directorID string) ([]*entity.Series, error) {
	return uc.seriesRepo.GetByDirector(directorID)
}

func (uc *seriesUseCase) GetSeriesByGenre(genreID string) ([]*entity.Series, error) {
	return uc.seriesRepo.GetByGenre(genreID)
}

func (uc *seriesUseCase) GetLatestSeries(days int) ([]*entity.Series, error) {
	if days <= 0 {
		days = 30
	}
	cutoff := time.Now().AddDate(0, 0, -days)
	return uc.seriesRepo.GetLatest(cutoff)
}

func (uc *seriesUseCase) AddActorToSeries(seriesID, actorID string) error {
	if _, err := uc.seriesRepo.GetByID(seriesID); err != nil {
		return err
	}
	if _, err := uc.actorRepo.GetByID(actorID); err != nil {
		return err
	}
	return uc.seriesRepo.AddActor(seriesID, actorID)
}

func (uc *seriesUseCase) RemoveActorFromSeries(seriesID, actorID string) error {
	if _, err := uc.seriesRepo.GetByID(seriesID); err != nil {
		return err
	}
	return uc.seriesRepo.RemoveActor(seriesID, actorID)
}

func (uc *seriesUseCase) UploadPoster(seriesID string, file io.Reader, contentType string) (*entity.Series, error) {
	series, err := uc.seriesRepo.GetByID(seriesID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("posters/series/%s", seriesID)
	url, err := uc.s3Client.UploadFile(key, file, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload poster for series %s: %v", seriesID, err)
		return nil, err
	}

	series.PosterURL = url
	if err := uc.seriesRepo.Update(series); err != nil {
		return nil, err
	}
	return series, nil
}

func (uc *seriesUseCase) UpdateSeries(id string, update SeriesUpdate) (*entity.Series, error) {
	series, err := uc.seriesRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		series.Title = *update.Title
	}
	if update.Description != nil {
		series.Description = *update.Description
	}
	if update.YearPublished != nil {
		series.YearPublished = *update.YearPublished
	}
	if update.DirectorID != nil {
		series.DirectorID = *update.DirectorID
	}
	if update.GenreID != nil {
		series.GenreID = *update.GenreID
	}

	if err := uc.seriesRepo.Update(series); err != nil {
		return nil, err
	}
	return uc.seriesRepo.GetByID(id)
}

// DeleteSeries removes the series row; episodes go with it through the
// cascade on series_id.
func (uc *seriesUseCase) DeleteSeries(id string) error {
	return uc.seriesRepo.Delete(id)
}

func (uc *seriesUseCase) CreateEpisode(episode *entity.Episode) error {
	if _, err := uc.seriesRepo.GetByID(episode.SeriesID); err != nil {
		return err
	}
	return uc.episodeRepo.Create(episode)
}

func (uc *seriesUseCase) GetEpisode(id string) (*entity.Episode, error) {
	return uc.episodeRepo.GetByID(id)
}

func (uc *seriesUseCase) ListEpisodes(seriesID string) ([]*entity.Episode, error) {
	if _, err := uc.seriesRepo.GetByID(seriesID); err != nil {
		return nil, err
	}
	return uc.episodeRepo.GetBySeries(seriesID)
}

func (uc *seriesUseCase) SearchEpisodesByName(name string) ([]*entity.Episode, error) {
	return uc.episodeRepo.GetByName(name)
}

func (uc *seriesUseCase) RenameEpisode(id, name string) (*entity.Episode, error) {
	episode, err := uc.episodeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	episode.Name = name
	if err := uc.episodeRepo.Update(episode); err != nil {
		return nil, err
	}
	return episode, nil
}

func (uc *seriesUseCase) DeleteEpisode(id string) error {
	return uc.episodeRepo.Delete(id)
}
