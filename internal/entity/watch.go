package entity

import "time"

// MovieWatch records that a user watched a movie, optionally with a rating.
type MovieWatch struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	MovieID     string    `json:"movie_id"`
	Rating      *int      `json:"rating,omitempty"`
	DateWatched time.Time `json:"date_watched"`
}

// EpisodeWatch records that a user watched an episode, optionally with a rating.
type EpisodeWatch struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	EpisodeID   string    `json:"episode_id"`
	Rating      *int      `json:"rating,omitempty"`
	DateWatched time.Time `json:"date_watched"`
}

// SeriesWatchCount is an analytics row: a series title with its number of
// distinct (user, episode) watch pairs.
type SeriesWatchCount struct {
	SeriesID   string `json:"series_id"`
	Title      string `json:"title"`
	WatchCount int64  `json:"watch_count"`
}

// RatedTitle is an analytics row: a movie or series with its average rating.
type RatedTitle struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	AvgRating float64 `json:"avg_rating"`
}
