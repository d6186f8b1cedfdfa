package usecase

import (
	"time"

	"streamhub/internal/entity"
	"streamhub/internal/repo/persistent"
	"streamhub/pkg/logger"
)

// ActorUpdate carries the fields of an actor that may change. Nil fields are
// left as they are.
type ActorUpdate struct {
	FirstName   *string
	LastName    *string
	DateOfBirth *time.Time
	Country     *string
}

type ActorUseCase interface {
	CreateActor(actor *entity.Actor) error
	ListActors(skip, limit int) ([]*entity.Actor, error)
	GetActor(id string) (*entity.Actor, error)
	SearchActorsByName(name string) ([]*entity.Actor, error)
	SearchActorsByCountry(country string) ([]*entity.Actor, error)
	GetActorsByMovie(movieID string) ([]*entity.Actor, error)
	GetActorsBySeries(seriesID string) ([]*entity.Actor, error)
	UpdateActor(id string, update ActorUpdate) (*entity.Actor, error)
	DeleteActor(id string) error
}

type actorUseCase struct {
	actorRepo persistent.ActorRepository
	logger    *logger.Logger
}

func NewActorUseCase(actorRepo persistent.ActorRepository, logger *logger.Logger) ActorUseCase {
	return &actorUseCase{actorRepo: actorRepo, logger: logger}
}

func (uc *actorUseCase) CreateActor(actor *entity.Actor) error {
	return uc.actorRepo.Create(actor)
}

func (uc *actorUseCase) ListActors(skip, limit int) ([]*entity.Actor, error) {
	return uc.actorRepo.GetMany(skip, limit)
}

func (uc *actorUseCase) GetActor(id string) (*entity.Actor, error) {
	return uc.actorRepo.GetByID(id)
}

func (uc *actorUseCase) SearchActorsByName(name string) ([]*entity.Actor, error) {
	return uc.actorRepo.GetByName(name)
}

func (uc *actorUseCase) SearchActorsByCountry(country string) ([]*entity.Actor, error) {
	return uc.actorRepo.GetByCountry(country)
}

func (uc *actorUseCase) GetActorsByMovie(movieID string) ([]*entity.Actor, error) {
	return uc.actorRepo.GetByMovie(movieID)
}

func (uc *actorUseCase) GetActorsBySeries(seriesID string) ([]*entity.Actor, error) {
	return uc.actorRepo.GetBySeries(seriesID)
}

func (uc *actorUseCase) UpdateActor(id string, update ActorUpdate) (*entity.Actor, error) {
	actor, err := uc.actorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.FirstName != nil {
		actor.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		actor.LastName = *update.LastName
	}
	if update.DateOfBirth != nil {
		actor.DateOfBirth = *update.DateOfBirth
	}
	if update.Country != nil {
		actor.Country = *update.Country
	}

	if err := uc.actorRepo.Update(actor); err != nil {
		return nil, err
	}
	return actor, nil
}

func (uc *actorUseCase) DeleteActor(id string) error {
	return uc.actorRepo.Delete(id)
}
