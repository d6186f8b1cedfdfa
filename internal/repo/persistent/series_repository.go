package persistent

import (
	"time"

	"streamhub/internal/entity"
	"streamhub/internal/model"

	"gorm.io/gorm"
)

type SeriesRepository interface {
	Create(series *entity.Series) error
	GetAll() ([]*entity.Series, error)
	GetMany(skip, limit int) ([]*entity.Series, error)
	GetByID(id string) (*entity.Series, error)
	GetByTitle(title string) ([]*entity.Series, error)
	GetByDirector(directorID string) ([]*entity.Series, error)
	GetByGenre(genreID string) ([]*entity.Series, error)
	GetLatest(cutoff time.Time) ([]*entity.Series, error)
	AddActor(seriesID, actorID string) error
	RemoveActor(seriesID, actorID string) error
	Update(series *entity.Series) error
	Delete(id string) error
}

type seriesRepository struct {
	base[model.SeriesModel]
}

func NewSeriesRepository(db *gorm.DB) SeriesRepository {
	return &seriesRepository{base[model.SeriesModel]{db: db}}
}

func (r *seriesRepository) expanded() *gorm.DB {
	return r.db.Preload("Director").Preload("Genre").Preload("Actors").Preload("Episodes")
}

func (r *seriesRepository) Create(series *entity.Series) error {
	seriesModel := ToSeriesModel(series)
	if seriesModel.DateAdded.IsZero() {
		seriesModel.DateAdded = time.Now()
	}
	if err := r.base.Create(seriesModel); err != nil {
		return err
	}
	*series = *ToSeriesEntity(seriesModel)
	return nil
}

func (r *seriesRepository) GetAll() ([]*entity.Series, error) {
	var models []model.SeriesModel
	if err := r.expanded().Find(&models).Error; err != nil {
		return nil, translate(err)
	}
	return ToSeriesEntities(models), nil
}

func (r *seriesRepository) GetMany(skip, limit int) ([]*entity.Series, error) {
	var models []model.SeriesModel
	q := r.expanded().Offset(skip)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&models).Error; err != nil {
		return nil, translate(err)
	}
	return ToSeriesEntities(models), nil
}

func (r *seriesRepository) GetByID(id string) (*entity.Series, error) {
	var seriesModel model.SeriesModel
	if err := r.expanded().Where("id = ?", id).First(&seriesModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToSeriesEntity(&seriesModel), nil
}

func (r *seriesRepository) GetByTitle(title string) ([]*entity.Series, error) {
	var models []model.SeriesModel
	if err := r.expanded().Where("title ILIKE ?", "%"+title+"%").Find(&models).Error; err != nil {
		return nil, translate(err)
	}
	return ToSeriesEntities(models), nil
}

func (r *seriesRepository) GetByDirector(directorID string) ([]*entity.Series, error) {
	var models []model.SeriesModel
	if err := r.expanded().Where("director_id = ?", directorID).Find(&models).Error; err != nil {
		return nil, translate(err)
	}
	return ToSeriesEntities(models), nil
}

func (r *seriesRepository) GetByGenre(genreID string) ([]*entity.Series, error) {
	var models []model.SeriesModel
	if err := r.expanded().Where("genre_id = ?", genreID).Find(&models).Error; err != nil {
		return nil, translate(err)
	}
	return ToSeriesEntities(models), nil
}

func (r *seriesRepository) GetLatest(cutoff time.Time) ([]*entity.Series, error) {
	var models []model.SeriesModel
	err := r.expanded().
		Where("date_added >= ?", cutoff).
		Order("date_added DESC").
		Find(&models).Error
	if err != nil {
		return nil, translate(err)
	}
	return ToSeriesEntities(models), nil
}

func (r *seriesRepository) AddActor(seriesID, actorID string) error {
	seriesModel := model.SeriesModel{ID: seriesID}
	actorModel := model.ActorModel{ID: actorID}
	return translate(r.db.Model(&seriesModel).Association("Actors").Append(&actorModel))
}

func (r *seriesRepository) RemoveActor(seriesID, actorID string) error {
	seriesModel := model.SeriesModel{ID: seriesID}
	actorModel := model.ActorModel{ID: actorID}
	return translate(r.db.Model(&seriesModel).Association("Actors").Delete(&actorModel))
}

func (r *seriesRepository) Update(series *entity.Series) error {
	return r.base.Save(ToSeriesModel(series))
}

// Delete removes the series and, through the ON DELETE CASCADE constraint on
// episodes.series_id, all of its episodes in the same statement.
func (r *seriesRepository) Delete(id string) error {
	return r.base.Delete(id)
}
