package persistent

import (
	"streamhub/internal/entity"
	"streamhub/internal/model"

	"gorm.io/gorm"
)

type ActorRepository interface {
	Create(actor *entity.Actor) error
	GetAll() ([]*entity.Actor, error)
	GetMany(skip, limit int) ([]*entity.Actor, error)
	GetByID(id string) (*entity.Actor, error)
	GetByName(name string) ([]*entity.Actor, error)
	GetByCountry(country string) ([]*entity.Actor, error)
	GetByMovie(movieID string) ([]*entity.Actor, error)
	GetBySeries(seriesID string) ([]*entity.Actor, error)
	Update(actor *entity.Actor) error
	Delete(id string) error
}

type actorRepository struct {
	base[model.ActorModel]
}

func NewActorRepository(db *gorm.DB) ActorRepository {
	return &actorRepository{base[model.ActorModel]{db: db}}
}

func (r *actorRepository) Create(actor *entity.Actor) error {
	actorModel := ToActorModel(actor)
	if err := r.base.Create(actorModel); err != nil {
		return err
	}
	*actor = *ToActorEntity(actorModel)
	return nil
}

func (r *actorRepository) GetAll() ([]*entity.Actor, error) {
	models, err := r.base.All()
	if err != nil {
		return nil, err
	}
	return ToActorEntities(models), nil
}

func (r *actorRepository) GetMany(skip, limit int) ([]*entity.Actor, error) {
	models, err := r.base.Many(skip, limit)
	if err != nil {
		return nil, err
	}
	return ToActorEntities(models), nil
}

func (r *actorRepository) GetByID(id string) (*entity.Actor, error) {
	actorModel, err := r.base.ByID(id)
	if err != nil {
		return nil, err
	}
	return ToActorEntity(actorModel), nil
}

// GetByName matches the substring case-insensitively against either name part.
func (r *actorRepository) GetByName(name string) ([]*entity.Actor, error) {
	var models []model.ActorModel
	pattern := "%" + name + "%"
	if err := r.db.Where("first_name ILIKE ? OR last_name ILIKE ?", pattern, pattern).Find(&models).Error; err != nil {
		return nil, translate(err)
	}
	return ToActorEntities(models), nil
}

func (r *actorRepository) GetByCountry(country string) ([]*entity.Actor, error) {
	var models []model.ActorModel
	if err := r.db.Where("country = ?", country).Find(&models).Error; err != nil {
		return nil, translate(err)
	}
	return ToActorEntities(models), nil
}

func (r *actorRepository) GetByMovie(movieID string) ([]*entity.Actor, error) {
	var models []model.ActorModel
	err := r.db.
		Joins("INNER JOIN movie_actors ON movie_actors.actor_id = actors.id").
		Where("movie_actors.movie_id = ?", movieID).
		Find(&models).Error
	if err != nil {
		return nil, translate(err)
	}
	return ToActorEntities(models), nil
}

func (r *actorRepository) GetBySeries(seriesID string) ([]*entity.Actor, error) {
	var models []model.ActorModel
	err := r.db.
		Joins("INNER JOIN series_actors ON series_actors.actor_id = actors.id").
		Where("series_actors.series_id = ?", seriesID).
		Find(&models).Error
	if err != nil {
		return nil, translate(err)
	}
	return ToActorEntities(models), nil
}

func (r *actorRepository) Update(actor *entity.Actor) error {
	return r.base.Save(ToActorModel(actor))
}

func (r *actorRepository) Delete(id string) error {
	return r.base.Delete(id)
}
