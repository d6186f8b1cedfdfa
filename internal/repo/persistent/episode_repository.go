package persistent

import (
	"streamhub/internal/entity"
	"streamhub/internal/model"

	"gorm.io/gorm"
)

type EpisodeRepository interface {
	Create(episode *entity.Episode) error
	GetAll() ([]*entity.Episode, error)
	GetByID(id string) (*entity.Episode, error)
	GetBySeries(seriesID string) ([]*entity.Episode, error)
	GetByName(name string) ([]*entity.Episode, error)
	Update(episode *entity.Episode) error
	Delete(id string) error
}

type episodeRepository struct {
	base[model.EpisodeModel]
}

func NewEpisodeRepository(db *gorm.DB) EpisodeRepository {
	return &episodeRepository{base[model.EpisodeModel]{db: db}}
}

func (r *episodeRepository) Create(episode *entity.Episode) error {
	episodeModel := ToEpisodeModel(episode)
	if err := r.base.Create(episodeModel); err != nil {
		return err
	}
	*episode = *ToEpisodeEntity(episodeModel)
	return nil
}

func (r *episodeRepository) GetAll() ([]*entity.Episode, error) {
	models, err := r.base.All()
	if err != nil {
		return nil, err
	}
	return ToEpisodeEntities(models), nil
}

func (r *episodeRepository) GetByID(id string) (*entity.Episode, error) {
	episodeModel, err := r.base.ByID(id)
	if err != nil {
		return nil, err
	}
	return ToEpisodeEntity(episodeModel), nil
}

func (r *episodeRepository) GetBySeries(seriesID string) ([]*entity.Episode, error) {
	var models []model.EpisodeModel
	if err := r.db.Where("series_id = ?", seriesID).Find(&models).Error; err != nil {
		return nil, translate(err)
	}
	return ToEpisodeEntities(models), nil
}

func (r *episodeRepository) GetByName(name string) ([]*entity.Episode, error) {
	var models []model.EpisodeModel
	if err := r.db.Where("name ILIKE ?", "%"+name+"%").Find(&models).Error; err != nil {
		return nil, translate(err)
	}
	return ToEpisodeEntities(models), nil
}

func (r *episodeRepository) Update(episode *entity.Episode) error {
	return r.base.Save(ToEpisodeModel(episode))
}

func (r *episodeRepository) Delete(id string) error {
	return r.base.Delete(id)
}
