package persistent

import (
	"time"

	"streamhub/internal/entity"
	"streamhub/internal/model"

	"gorm.io/gorm"
)

type MovieRepository interface {
	Create(movie *entity.Movie) error
	GetAll() ([]*entity.Movie, error)
	GetMany(skip, limit int) ([]*entity.Movie, error)
	GetByID(id string) (*entity.Movie, error)
	GetByTitle(title string) ([]*entity.Movie, error)
	GetByDirector(directorID string) ([]*entity.Movie, error)
	GetByGenre(genreID string) ([]*entity.Movie, error)
	GetLatest(cutoff time.Time) ([]*entity.Movie, error)
	AddActor(movieID, actorID string) error
	RemoveActor(movieID, actorID string) error
	Update(movie *entity.Movie) error
	Delete(id string) error
}

type movieRepository struct {
	base[model.MovieModel]
}

func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{base[model.MovieModel]{db: db}}
}

// expanded preloads the director and genre so that a fetched movie carries
// the full related records, not just foreign keys.
func (r *movieRepository) expanded() *gorm.DB {
	return r.db.Preload("Director").Preload("Genre").Preload("Actors")
}

func (r *movieRepository) Create(movie *entity.Movie) error {
	movieModel := ToMovieModel(movie)
	if movieModel.DateAdded.IsZero() {
		movieModel.DateAdded = time.Now()
	}
	if err := r.base.Create(movieModel); err != nil {
		return err
	}
	*movie = *ToMovieEntity(movieModel)
	return nil
}

func (r *movieRepository) GetAll() ([]*entity.Movie, error) {
	var models []model.MovieModel
	if err := r.expanded().Find(&models).Error; err != nil {
		return nil, translate(err)
	}
	return ToMovieEntities(models), nil
}

func (r *movieRepository) GetMany(skip, limit int) ([]*entity.Movie, error) {
	var models []model.MovieModel
	q := r.expanded().Offset(skip)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&models).Error; err != nil {
		return nil, translate(err)
	}
	return ToMovieEntities(models), nil
}

func (r *movieRepository) GetByID(id string) (*entity.Movie, error) {
	var movieModel model.MovieModel
	if err := r.expanded().Where("id = ?", id).First(&movieModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToMovieEntity(&movieModel), nil
}

func (r *movieRepository) GetByTitle(title string) ([]*entity.Movie, error) {
	var models []model.MovieModel
	if err := r.expanded().Where("title ILIKE ?", "%"+title+"%").Find(&models).Error; err != nil {
		return nil, translate(err)
	}
	return ToMovieEntities(models), nil
}

func (r *movieRepository) GetByDirector(directorID string) ([]*entity.Movie, error) {
	var models []model.MovieModel
	if err := r.expanded().Where("director_id = ?", directorID).Find(&models).Error; err != nil {
		return nil, translate(err)
	}
	return ToMovieEntities(models), nil
}

func (r *movieRepository) GetByGenre(genreID string) ([]*entity.Movie, error) {
	var models []model.MovieModel
	if err := r.expanded().Where("genre_id = ?", genreID).Find(&models).Error; err != nil {
		return nil, translate(err)
	}
	return ToMovieEntities(models), nil
}

func (r *movieRepository) GetLatest(cutoff time.Time) ([]*entity.Movie, error) {
	var models []model.MovieModel
	err := r.expanded().
		Where("date_added >= ?", cutoff).
		Order("date_added DESC").
		Find(&models).Error
	if err != nil {
		return nil, translate(err)
	}
	return ToMovieEntities(models), nil
}

func (r *movieRepository) AddActor(movieID, actorID string) error {
	movieModel := model.MovieModel{ID: movieID}
	actorModel := model.ActorModel{ID: actorID}
	return translate(r.db.Model(&movieModel).Association("Actors").Append(&actorModel))
}

func (r *movieRepository) RemoveActor(movieID, actorID string) error {
	movieModel := model.MovieModel{ID: movieID}
	actorModel := model.ActorModel{ID: actorID}
	return translate(r.db.Model(&movieModel).Association("Actors").Delete(&actorModel))
}

func (r *movieRepository) Update(movie *entity.Movie) error {
	return r.base.Save(ToMovieModel(movie))
}

func (r *movieRepository) Delete(id string) error {
	return r.base.Delete(id)
}
