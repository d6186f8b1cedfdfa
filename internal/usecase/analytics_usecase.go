package usecase

import (
	"context"
	"encoding/json"
	"time"

	"streamhub/internal/entity"
	"streamhub/internal/repo/persistent"
	"streamhub/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const analyticsCacheTTL = 60 * time.Second

type AnalyticsUseCase interface {
	LeastPopularMovies(ctx context.Context) ([]*entity.Movie, error)
	LeastPopularSeries(ctx context.Context) ([]*entity.Series, error)
	MostWatchedSeries(ctx context.Context) ([]*entity.SeriesWatchCount, error)
	BestRatedMovies(ctx context.Context) ([]*entity.RatedTitle, error)
	WorstRatedMovies(ctx context.Context) ([]*entity.RatedTitle, error)
	BestRatedSeries(ctx context.Context) ([]*entity.RatedTitle, error)
	WorstRatedSeries(ctx context.Context) ([]*entity.RatedTitle, error)
	RecommendedMovies(ctx context.Context, userID string) ([]*entity.Movie, error)
	RecommendedSeries(ctx context.Context, userID string) ([]*entity.Series, error)
}

type analyticsUseCase struct {
	analyticsRepo persistent.AnalyticsRepository
	redisClient   *redis.Client
	logger        *logger.Logger
}

func NewAnalyticsUseCase(
	analyticsRepo persistent.AnalyticsRepository,
	redisClient *redis.Client,
	logger *logger.Logger,
) AnalyticsUseCase {
	return &analyticsUseCase{
		analyticsRepo: analyticsRepo,
		redisClient:   redisClient,
		logger:        logger,
	}
}

// cached serves a query result from redis when a fresh copy exists, otherwise
// runs the query and stores the result. Cache failures fall through to the
// database and are only logged.
func cached[T any](ctx context.Context, uc *analyticsUseCase, key string, fetch func() (T, error)) (T, error) {
	var zero T
	if uc.redisClient != nil {
		raw, err := uc.redisClient.Get(ctx, key).Result()
		if err == nil {
			var result T
			if err := json.Unmarshal([]byte(raw), &result); err == nil {
				return result, nil
			}
		} else if err != redis.Nil {
			uc.logger.Warn("Analytics cache read failed for %s: %v", key, err)
		}
	}

	result, err := fetch()
	if err != nil {
		return zero, err
	}

	if uc.redisClient != nil {
		if raw, err := json.Marshal(result); err == nil {
			if err := uc.redisClient.Set(ctx, key, raw, analyticsCacheTTL).Err(); err != nil {
				uc.logger.Warn("Analytics cache write failed for %s: %v", key, err)
			}
		}
	}
	return result, nil
}

func (uc *analyticsUseCase) LeastPopularMovies(ctx context.Context) ([]*entity.Movie, error) {
	return cached(ctx, uc, "analytics:least_popular_movies", uc.analyticsRepo.GetLeastPopularMovies)
}

func (uc *analyticsUseCase) LeastPopularSeries(ctx context.Context) ([]*entity.Series, error) {
	return cached(ctx, uc, "analytics:least_popular_series", uc.analyticsRepo.GetLeastPopularSeries)
}

func (uc *analyticsUseCase) MostWatchedSeries(ctx context.Context) ([]*entity.SeriesWatchCount, error) {
	return cached(ctx, uc, "analytics:most_watched_series", uc.analyticsRepo.GetMostWatchedSeries)
}

func (uc *analyticsUseCase) BestRatedMovies(ctx context.Context) ([]*entity.RatedTitle, error) {
	return cached(ctx, uc, "analytics:best_rated_movies", uc.analyticsRepo.GetBestRatedMovies)
}

func (uc *analyticsUseCase) WorstRatedMovies(ctx context.Context) ([]*entity.RatedTitle, error) {
	return cached(ctx, uc, "analytics:worst_rated_movies", uc.analyticsRepo.GetWorstRatedMovies)
}

func (uc *analyticsUseCase) BestRatedSeries(ctx context.Context) ([]*entity.RatedTitle, error) {
	return cached(ctx, uc, "analytics:best_rated_series", uc.analyticsRepo.GetBestRatedSeries)
}

func (uc *analyticsUseCase) WorstRatedSeries(ctx context.Context) ([]*entity.RatedTitle, error) {
	return cached(ctx, uc, "analytics:worst_rated_series", uc.analyticsRepo.GetWorstRatedSeries)
}

// Recommendations are personal, so the cache key carries the user id.
func (uc *analyticsUseCase) RecommendedMovies(ctx context.Context, userID string) ([]*entity.Movie, error) {
	return cached(ctx, uc, "analytics:recommended_movies:"+userID, func() ([]*entity.Movie, error) {
		return uc.analyticsRepo.GetRecommendedMovies(userID)
	})
}

func (uc *analyticsUseCase) RecommendedSeries(ctx context.Context, userID string) ([]*entity.Series, error) {
	return cached(ctx, uc, "analytics:recommended_series:"+userID, func() ([]*entity.Series, error) {
		return uc.analyticsRepo.GetRecommendedSeries(userID)
	})
}
