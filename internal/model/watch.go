package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MovieWatchModel is one row per (user, movie); watching again updates the
// row instead of inserting a duplicate.
type MovieWatchModel struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID      string    `gorm:"type:uuid;not null;uniqueIndex:idx_user_movie;index" json:"user_id"`
	MovieID     string    `gorm:"type:uuid;not null;uniqueIndex:idx_user_movie;index" json:"movie_id"`
	Rating      *int      `json:"rating"`
	DateWatched time.Time `json:"date_watched"`

	User  UserModel  `gorm:"foreignKey:UserID" json:"-"`
	Movie MovieModel `gorm:"foreignKey:MovieID" json:"-"`
}

func (MovieWatchModel) TableName() string {
	return "user_watch_movies"
}

func (w *MovieWatchModel) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return nil
}

type EpisodeWatchModel struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID      string    `gorm:"type:uuid;not null;uniqueIndex:idx_user_episode;index" json:"user_id"`
	EpisodeID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_user_episode;index" json:"episode_id"`
	Rating      *int      `json:"rating"`
	DateWatched time.Time `json:"date_watched"`

	User    UserModel    `gorm:"foreignKey:UserID" json:"-"`
	Episode EpisodeModel `gorm:"foreignKey:EpisodeID" json:"-"`
}

func (EpisodeWatchModel) TableName() string {
	return "user_watch_episodes"
}

func (w *EpisodeWatchModel) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return nil
}
