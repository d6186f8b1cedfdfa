package usecase

import (
	"streamhub/internal/entity"
	"streamhub/internal/repo/persistent"
	"streamhub/pkg/logger"
)

type GenreUseCase interface {
	CreateGenre(genre *entity.Genre) error
	ListGenres(skip, limit int) ([]*entity.Genre, error)
	GetGenre(id string) (*entity.Genre, error)
	SearchGenresByName(name string) ([]*entity.Genre, error)
	RenameGenre(id, name string) (*entity.Genre, error)
	DeleteGenre(id string) error
}

type genreUseCase struct {
	genreRepo persistent.GenreRepository
	logger    *logger.Logger
}

func NewGenreUseCase(genreRepo persistent.GenreRepository, logger *logger.Logger) GenreUseCase {
	return &genreUseCase{genreRepo: genreRepo, logger: logger}
}

// CreateGenre relies on the unique name constraint; a duplicate surfaces as
// entity.ErrConflict.
func (uc *genreUseCase) CreateGenre(genre *entity.Genre) error {
	return uc.genreRepo.Create(genre)
}

func (uc *genreUseCase) ListGenres(skip, limit int) ([]*entity.Genre, error) {
	return uc.genreRepo.GetMany(skip, limit)
}

func (uc *genreUseCase) GetGenre(id string) (*entity.Genre, error) {
	return uc.genreRepo.GetByID(id)
}

func (uc *genreUseCase) SearchGenresByName(name string) ([]*entity.Genre, error) {
	return uc.genreRepo.GetByName(name)
}

func (uc *genreUseCase) RenameGenre(id, name string) (*entity.Genre, error) {
	genre, err := uc.genreRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	genre.Name = name
	if err := uc.genreRepo.Update(genre); err != nil {
		return nil, err
	}
	return genre, nil
}

func (uc *genreUseCase) DeleteGenre(id string) error {
	return uc.genreRepo.Delete(id)
}
