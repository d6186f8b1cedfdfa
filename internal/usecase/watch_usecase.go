package usecase

import (
	"streamhub/internal/entity"
	"streamhub/internal/repo/persistent"
	"streamhub/pkg/logger"
	"streamhub/pkg/metrics"
)

type WatchUseCase interface {
	WatchMovie(userID, movieID string, rating *int) (*entity.MovieWatch, error)
	WatchEpisode(userID, episodeID string, rating *int) (*entity.EpisodeWatch, error)
	GetMovieHistory(userID string) ([]*entity.MovieWatch, error)
	GetEpisodeHistory(userID string) ([]*entity.EpisodeWatch, error)
}

type watchUseCase struct {
	watchRepo   persistent.WatchRepository
	movieRepo   persistent.MovieRepository
	episodeRepo persistent.EpisodeRepository
	logger      *logger.Logger
}

func NewWatchUseCase(
	watchRepo persistent.WatchRepository,
	movieRepo persistent.MovieRepository,
	episodeRepo persistent.EpisodeRepository,
	logger *logger.Logger,
) WatchUseCase {
	return &watchUseCase{
		watchRepo:   watchRepo,
		movieRepo:   movieRepo,
		episodeRepo: episodeRepo,
		logger:      logger,
	}
}

func validRating(rating *int) error {
	if rating != nil && (*rating < 1 || *rating > 10) {
		return entity.ErrRatingRange
	}
	return nil
}

// WatchMovie records a watch with an optional rating. Rewatching the same
// movie updates the stored rating and watch date.
func (uc *watchUseCase) WatchMovie(userID, movieID string, rating *int) (*entity.MovieWatch, error) {
	if err := validRating(rating); err != nil {
		return nil, err
	}
	if _, err := uc.movieRepo.GetByID(movieID); err != nil {
		return nil, err
	}

	watch, err := uc.watchRepo.UpsertMovieWatch(userID, movieID, rating)
	if err != nil {
		return nil, err
	}
	metrics.WatchEvents.WithLabelValues("movie").Inc()
	return watch, nil
}

func (uc *watchUseCase) WatchEpisode(userID, episodeID string, rating *int) (*entity.EpisodeWatch, error) {
	if err := validRating(rating); err != nil {
		return nil, err
	}
	if _, err := uc.episodeRepo.GetByID(episodeID); err != nil {
		return nil, err
	}

	watch, err := uc.watchRepo.UpsertEpisodeWatch(userID, episodeID, rating)
	if err != nil {
		return nil, err
	}
	metrics.WatchEvents.WithLabelValues("episode").Inc()
	return watch, nil
}

func (uc *watchUseCase) GetMovieHistory(userID string) ([]*entity.MovieWatch, error) {
	return uc.watchRepo.GetMovieHistory(userID)
}

func (uc *watchUseCase) GetEpisodeHistory(userID string) ([]*entity.EpisodeWatch, error) {
	return uc.watchRepo.GetEpisodeHistory(userID)
}
