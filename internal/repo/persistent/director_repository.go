package persistent

import (
	"streamhub/internal/entity"
	"streamhub/internal/model"

	"gorm.io/gorm"
)

type DirectorRepository interface {
	Create(director *entity.Director) error
	GetAll() ([]*entity.Director, error)
	GetMany(skip, limit int) ([]*entity.Director, error)
	GetByID(id string) (*entity.Director, error)
	GetByName(name string) ([]*entity.Director, error)
	GetByCountry(country string) ([]*entity.Director, error)
	Update(director *entity.Director) error
	Delete(id string) error
}

type directorRepository struct {
	base[model.DirectorModel]
}

func NewDirectorRepository(db *gorm.DB) DirectorRepository {
	return &directorRepository{base[model.DirectorModel]{db: db}}
}

func (r *directorRepository) Create(director *entity.Director) error {
	directorModel := ToDirectorModel(director)
	if err := r.base.Create(directorModel); err != nil {
		return err
	}
	*director = *ToDirectorEntity(directorModel)
	return nil
}

func (r *directorRepository) GetAll() ([]*entity.Director, error) {
	models, err := r.base.All()
	if err != nil {
		return nil, err
	}
	return ToDirectorEntities(models), nil
}

func (r *directorRepository) GetMany(skip, limit int) ([]*entity.Director, error) {
	models, err := r.base.Many(skip, limit)
	if err != nil {
		return nil, err
	}
	return ToDirectorEntities(models), nil
}

func (r *directorRepository) GetByID(id string) (*entity.Director, error) {
	directorModel, err := r.base.ByID(id)
	if err != nil {
		return nil, err
	}
	return ToDirectorEntity(directorModel), nil
}

func (r *directorRepository) GetByName(name string) ([]*entity.Director, error) {
	var models []model.DirectorModel
	pattern := "%" + name + "%"
	if err := r.db.Where("first_name ILIKE ? OR last_name ILIKE ?", pattern, pattern).Find(&models).Error; err != nil {
		return nil, translate(err)
	}
	return ToDirectorEntities(models), nil
}

func (r *directorRepository) GetByCountry(country string) ([]*entity.Director, error) {
	var models []model.DirectorModel
	if err := r.db.Where("country = ?", country).Find(&models).Error; err != nil {
		return nil, translate(err)
	}
	return ToDirectorEntities(models), nil
}

func (r *directorRepository) Update(director *entity.Director) error {
	return r.base.Save(ToDirectorModel(director))
}

func (r *directorRepository) Delete(id string) error {
	return r.base.Delete(id)
}
