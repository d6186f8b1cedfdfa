package persistent

import (
	"streamhub/internal/entity"
	"streamhub/internal/model"

	"gorm.io/gorm"
)

type GenreRepository interface {
	Create(genre *entity.Genre) error
	GetAll() ([]*entity.Genre, error)
	GetMany(skip, limit int) ([]*entity.Genre, error)
	GetByID(id string) (*entity.Genre, error)
	GetByName(name string) ([]*entity.Genre, error)
	Update(genre *entity.Genre) error
	Delete(id string) error
}

type genreRepository struct {
	base[model.GenreModel]
}

func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{base[model.GenreModel]{db: db}}
}

func (r *genreRepository) Create(genre *entity.Genre) error {
	genreModel := ToGenreModel(genre)
	if err := r.base.Create(genreModel); err != nil {
		return err
	}
	*genre = *ToGenreEntity(genreModel)
	return nil
}

func (r *genreRepository) GetAll() ([]*entity.Genre, error) {
	models, err := r.base.All()
	if err != nil {
		return nil, err
	}
	return ToGenreEntities(models), nil
}

func (r *genreRepository) GetMany(skip, limit int) ([]*entity.Genre, error) {
	models, err := r.base.Many(skip, limit)
	if err != nil {
		return nil, err
	}
	return ToGenreEntities(models), nil
}

func (r *genreRepository) GetByID(id string) (*entity.Genre, error) {
	genreModel, err := r.base.ByID(id)
	if err != nil {
		return nil, err
	}
	return ToGenreEntity(genreModel), nil
}

func (r *genreRepository) GetByName(name string) ([]*entity.Genre, error) {
	var models []model.GenreModel
	if err := r.db.Where("name ILIKE ?", "%"+name+"%").Find(&models).Error; err != nil {
		return nil, translate(err)
	}
	return ToGenreEntities(models), nil
}

func (r *genreRepository) Update(genre *entity.Genre) error {
	return r.base.Save(ToGenreModel(genre))
}

func (r *genreRepository) Delete(id string) error {
	return r.base.Delete(id)
}
