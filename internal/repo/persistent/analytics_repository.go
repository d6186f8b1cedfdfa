package persistent

import (
	"fmt"

	"streamhub/internal/entity"
	"streamhub/internal/model"

	"gorm.io/gorm"
)

// AnalyticsRepository serves the aggregate read queries: popularity,
// average ratings and genre-affinity recommendations. All methods are
// stateless reads.
type AnalyticsRepository interface {
	GetLeastPopularMovies() ([]*entity.Movie, error)
	GetLeastPopularSeries() ([]*entity.Series, error)
	GetMostWatchedSeries() ([]*entity.SeriesWatchCount, error)
	GetBestRatedMovies() ([]*entity.RatedTitle, error)
	GetWorstRatedMovies() ([]*entity.RatedTitle, error)
	GetBestRatedSeries() ([]*entity.RatedTitle, error)
	GetWorstRatedSeries() ([]*entity.RatedTitle, error)
	GetRecommendedMovies(userID string) ([]*entity.Movie, error)
	GetRecommendedSeries(userID string) ([]*entity.Series, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// GetLeastPopularMovies returns movies that never appear in watch history.
func (r *analyticsRepository) GetLeastPopularMovies() ([]*entity.Movie, error) {
	var models []model.MovieModel
	watched := r.db.Model(&model.MovieWatchModel{}).Select("movie_id")
	err := r.db.Preload("Director").Preload("Genre").
		Where("id NOT IN (?)", watched).
		Find(&models).Error
	if err != nil {
		return nil, translate(err)
	}
	return ToMovieEntities(models), nil
}

// GetLeastPopularSeries returns series none of whose episodes were watched.
func (r *analyticsRepository) GetLeastPopularSeries() ([]*entity.Series, error) {
	var models []model.SeriesModel
	watched := r.db.Model(&model.EpisodeWatchModel{}).
		Select("episodes.series_id").
		Joins("INNER JOIN episodes ON episodes.id = user_watch_episodes.episode_id")
	err := r.db.Preload("Director").Preload("Genre").
		Where("id NOT IN (?)", watched).
		Find(&models).Error
	if err != nil {
		return nil, translate(err)
	}
	return ToSeriesEntities(models), nil
}

// GetMostWatchedSeries counts distinct (user, episode) pairs per series.
func (r *analyticsRepository) GetMostWatchedSeries() ([]*entity.SeriesWatchCount, error) {
	var rows []entity.SeriesWatchCount
	err := r.db.Model(&model.EpisodeWatchModel{}).
		Select("series.id AS series_id, series.title AS title, COUNT(DISTINCT (user_watch_episodes.user_id, user_watch_episodes.episode_id)) AS watch_count").
		Joins("INNER JOIN episodes ON episodes.id = user_watch_episodes.episode_id").
		Joins("INNER JOIN series ON series.id = episodes.series_id").
		Group("series.id, series.title").
		Order("watch_count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}

	out := make([]*entity.SeriesWatchCount, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

const movieRatingQuery = `
SELECT m.id, m.title, r.avg_rating
FROM movies m
INNER JOIN (
    SELECT movie_id, AVG(rating) AS avg_rating
    FROM user_watch_movies
    WHERE rating IS NOT NULL
    GROUP BY movie_id
) r ON r.movie_id = m.id
WHERE r.avg_rating = (
    SELECT %s(avg_rating) FROM (
        SELECT AVG(rating) AS avg_rating
        FROM user_watch_movies
        WHERE rating IS NOT NULL
        GROUP BY movie_id
    ) x
)`

const seriesRatingQuery = `
SELECT s.id, s.title, r.avg_rating
FROM series s
INNER JOIN (
    SELECT e.series_id, AVG(w.rating) AS avg_rating
    FROM user_watch_episodes w
    INNER JOIN episodes e ON e.id = w.episode_id
    WHERE w.rating IS NOT NULL
    GROUP BY e.series_id
) r ON r.series_id = s.id
WHERE r.avg_rating = (
    SELECT %s(avg_rating) FROM (
        SELECT e.series_id, AVG(w.rating) AS avg_rating
        FROM user_watch_episodes w
        INNER JOIN episodes e ON e.id = w.episode_id
        WHERE w.rating IS NOT NULL
        GROUP BY e.series_id
    ) x
)`

// ratedTitles runs one of the rating queries with agg fixed to MAX or MIN;
// agg never comes from user input.
func (r *analyticsRepository) ratedTitles(query, agg string) ([]*entity.RatedTitle, error) {
	var rows []entity.RatedTitle
	if err := r.db.Raw(fmt.Sprintf(query, agg)).Scan(&rows).Error; err != nil {
		return nil, translate(err)
	}

	out := make([]*entity.RatedTitle, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

// GetBestRatedMovies returns the movie(s) tied at the highest average rating.
func (r *analyticsRepository) GetBestRatedMovies() ([]*entity.RatedTitle, error) {
	return r.ratedTitles(movieRatingQuery, "MAX")
}

func (r *analyticsRepository) GetWorstRatedMovies() ([]*entity.RatedTitle, error) {
	return r.ratedTitles(movieRatingQuery, "MIN")
}

func (r *analyticsRepository) GetBestRatedSeries() ([]*entity.RatedTitle, error) {
	return r.ratedTitles(seriesRatingQuery, "MAX")
}

func (r *analyticsRepository) GetWorstRatedSeries() ([]*entity.RatedTitle, error) {
	return r.ratedTitles(seriesRatingQuery, "MIN")
}

// watchedGenres builds a subquery of genre ids the user touched through
// watch history: movie genres directly, series genres through episodes.
func (r *analyticsRepository) watchedMovieGenres(userID string) *gorm.DB {
	return r.db.Model(&model.MovieWatchModel{}).
		Select("movies.genre_id").
		Joins("INNER JOIN movies ON movies.id = user_watch_movies.movie_id").
		Where("user_watch_movies.user_id = ?", userID)
}

func (r *analyticsRepository) watchedSeriesGenres(userID string) *gorm.DB {
	return r.db.Model(&model.EpisodeWatchModel{}).
		Select("series.genre_id").
		Joins("INNER JOIN episodes ON episodes.id = user_watch_episodes.episode_id").
		Joins("INNER JOIN series ON series.id = episodes.series_id").
		Where("user_watch_episodes.user_id = ?", userID)
}

// GetRecommendedMovies returns unseen movies in the user's watched genres.
func (r *analyticsRepository) GetRecommendedMovies(userID string) ([]*entity.Movie, error) {
	seen := r.db.Model(&model.MovieWatchModel{}).
		Select("movie_id").
		Where("user_id = ?", userID)

	var models []model.MovieModel
	err := r.db.Preload("Director").Preload("Genre").
		Where("genre_id IN (?) OR genre_id IN (?)", r.watchedMovieGenres(userID), r.watchedSeriesGenres(userID)).
		Where("id NOT IN (?)", seen).
		Find(&models).Error
	if err != nil {
		return nil, translate(err)
	}
	return ToMovieEntities(models), nil
}

// GetRecommendedSeries returns series in the user's watched genres with no
// episode the user has already watched.
func (r *analyticsRepository) GetRecommendedSeries(userID string) ([]*entity.Series, error) {
	seen := r.db.Model(&model.EpisodeWatchModel{}).
		Select("episodes.series_id").
		Joins("INNER JOIN episodes ON episodes.id = user_watch_episodes.episode_id").
		Where("user_watch_episodes.user_id = ?", userID)

	var models []model.SeriesModel
	err := r.db.Preload("Director").Preload("Genre").
		Where("genre_id IN (?) OR genre_id IN (?)", r.watchedMovieGenres(userID), r.watchedSeriesGenres(userID)).
		Where("id NOT IN (?)", seen).
		Find(&models).Error
	if err != nil {
		return nil, translate(err)
	}
	return ToSeriesEntities(models), nil
}
