package persistent

import (
	"time"

	"streamhub/internal/entity"
	"streamhub/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WatchRepository interface {
	UpsertMovieWatch(userID, movieID string, rating *int) (*entity.MovieWatch, error)
	UpsertEpisodeWatch(userID, episodeID string, rating *int) (*entity.EpisodeWatch, error)
	GetMovieHistory(userID string) ([]*entity.MovieWatch, error)
	GetEpisodeHistory(userID string) ([]*entity.EpisodeWatch, error)
}

type watchRepository struct {
	db *gorm.DB
}

func NewWatchRepository(db *gorm.DB) WatchRepository {
	return &watchRepository{db: db}
}

// UpsertMovieWatch records a watch. A repeat watch of the same movie updates
// the existing row's rating and date instead of inserting a duplicate.
func (r *watchRepository) UpsertMovieWatch(userID, movieID string, rating *int) (*entity.MovieWatch, error) {
	watchModel := &model.MovieWatchModel{
		UserID:      userID,
		MovieID:     movieID,
		Rating:      rating,
		DateWatched: time.Now(),
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "movie_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "date_watched"}),
	}).Create(watchModel).Error
	if err != nil {
		return nil, translate(err)
	}

	// Re-read so the caller sees the surviving row, not the candidate insert.
	var saved model.MovieWatchModel
	if err := r.db.Where("user_id = ? AND movie_id = ?", userID, movieID).First(&saved).Error; err != nil {
		return nil, translate(err)
	}
	return ToMovieWatchEntity(&saved), nil
}

func (r *watchRepository) UpsertEpisodeWatch(userID, episodeID string, rating *int) (*entity.EpisodeWatch, error) {
	watchModel := &model.EpisodeWatchModel{
		UserID:      userID,
		EpisodeID:   episodeID,
		Rating:      rating,
		DateWatched: time.Now(),
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "episode_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "date_watched"}),
	}).Create(watchModel).Error
	if err != nil {
		return nil, translate(err)
	}

	var saved model.EpisodeWatchModel
	if err := r.db.Where("user_id = ? AND episode_id = ?", userID, episodeID).First(&saved).Error; err != nil {
		return nil, translate(err)
	}
	return ToEpisodeWatchEntity(&saved), nil
}

func (r *watchRepository) GetMovieHistory(userID string) ([]*entity.MovieWatch, error) {
	var models []model.MovieWatchModel
	err := r.db.Where("user_id = ?", userID).Order("date_watched DESC").Find(&models).Error
	if err != nil {
		return nil, translate(err)
	}
	return ToMovieWatchEntities(models), nil
}

func (r *watchRepository) GetEpisodeHistory(userID string) ([]*entity.EpisodeWatch, error) {
	var models []model.EpisodeWatchModel
	err := r.db.Where("user_id = ?", userID).Order("date_watched DESC").Find(&models).Error
	if err != nil {
		return nil, translate(err)
	}
	return ToEpisodeWatchEntities(models), nil
}
