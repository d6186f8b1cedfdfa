package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GenreModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (GenreModel) TableName() string {
	return "genres"
}

func (g *GenreModel) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	return nil
}

type MovieModel struct {
	ID            string    `gorm:"type:uuid;primary_key" json:"id"`
	Title         string    `gorm:"type:varchar(255);not null;index" json:"title"`
	DateAdded     time.Time `gorm:"index" json:"date_added"`
	YearPublished int       `json:"year_published"`
	DirectorID    string    `gorm:"type:uuid;not null;index" json:"director_id"`
	GenreID       string    `gorm:"type:uuid;not null;index" json:"genre_id"`
	PosterURL     string    `gorm:"type:varchar(500)" json:"poster_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Director DirectorModel `gorm:"foreignKey:DirectorID" json:"-"`
	Genre    GenreModel    `gorm:"foreignKey:GenreID" json:"-"`
	Actors   []ActorModel  `gorm:"many2many:movie_actors;joinForeignKey:MovieID;joinReferences:ActorID" json:"-"`
}

func (MovieModel) TableName() string {
	return "movies"
}

func (m *MovieModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

// SeriesModel carries a composite unique index so the same director cannot
// have two series with the same title.
type SeriesModel struct {
	ID            string    `gorm:"type:uuid;primary_key" json:"id"`
	Title         string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_series_title_director" json:"title"`
	Description   string    `gorm:"type:text" json:"description"`
	DateAdded     time.Time `gorm:"index" json:"date_added"`
	YearPublished int       `json:"year_published"`
	DirectorID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_series_title_director;index" json:"director_id"`
	GenreID       string    `gorm:"type:uuid;not null;index" json:"genre_id"`
	PosterURL     string    `gorm:"type:varchar(500)" json:"poster_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Director DirectorModel  `gorm:"foreignKey:DirectorID" json:"-"`
	Genre    GenreModel     `gorm:"foreignKey:GenreID" json:"-"`
	Actors   []ActorModel   `gorm:"many2many:series_actors;joinForeignKey:SeriesID;joinReferences:ActorID" json:"-"`
	Episodes []EpisodeModel `gorm:"foreignKey:SeriesID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SeriesModel) TableName() string {
	return "series"
}

func (s *SeriesModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

type EpisodeModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	SeriesID  string    `gorm:"type:uuid;not null;index" json:"series_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (EpisodeModel) TableName() string {
	return "episodes"
}

func (e *EpisodeModel) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}
