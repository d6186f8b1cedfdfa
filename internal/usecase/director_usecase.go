package usecase

import (
	"streamhub/internal/entity"
	"streamhub/internal/repo/persistent"
	"streamhub/pkg/logger"
)

type DirectorUpdate struct {
	FirstName *string
	LastName  *string
	Country   *string
}

type DirectorUseCase interface {
	CreateDirector(director *entity.Director) error
	ListDirectors(skip, limit int) ([]*entity.Director, error)
	GetDirector(id string) (*entity.Director, error)
	SearchDirectorsByName(name string) ([]*entity.Director, error)
	SearchDirectorsByCountry(country string) ([]*entity.Director, error)
	UpdateDirector(id string, update DirectorUpdate) (*entity.Director, error)
	DeleteDirector(id string) error
}

type directorUseCase struct {
	directorRepo persistent.DirectorRepository
	logger       *logger.Logger
}

func NewDirectorUseCase(directorRepo persistent.DirectorRepository, logger *logger.Logger) DirectorUseCase {
	return &directorUseCase{directorRepo: directorRepo, logger: logger}
}

func (uc *directorUseCase) CreateDirector(director *entity.Director) error {
	return uc.directorRepo.Create(director)
}

func (uc *directorUseCase) ListDirectors(skip, limit int) ([]*entity.Director, error) {
	return uc.directorRepo.GetMany(skip, limit)
}

func (uc *directorUseCase) GetDirector(id string) (*entity.Director, error) {
	return uc.directorRepo.GetByID(id)
}

func (uc *directorUseCase) SearchDirectorsByName(name string) ([]*entity.Director, error) {
	return uc.directorRepo.GetByName(name)
}

func (uc *directorUseCase) SearchDirectorsByCountry(country string) ([]*entity.Director, error) {
	return uc.directorRepo.GetByCountry(country)
}

func (uc *directorUseCase) UpdateDirector(id string, update DirectorUpdate) (*entity.Director, error) {
	director, err := uc.directorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.FirstName != nil {
		director.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		director.LastName = *update.LastName
	}
	if update.Country != nil {
		director.Country = *update.Country
	}

	if err := uc.directorRepo.Update(director); err != nil {
		return nil, err
	}
	return director, nil
}

func (uc *directorUseCase) DeleteDirector(id string) error {
	return uc.directorRepo.Delete(id)
}
