package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActorModel struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	FirstName   string    `gorm:"type:varchar(100);not null;index" json:"first_name"`
	LastName    string    `gorm:"type:varchar(100);not null;index" json:"last_name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Country     string    `gorm:"type:varchar(100);index" json:"country"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Movies []MovieModel  `gorm:"many2many:movie_actors;joinForeignKey:ActorID;joinReferences:MovieID" json:"-"`
	Series []SeriesModel `gorm:"many2many:series_actors;joinForeignKey:ActorID;joinReferences:SeriesID" json:"-"`
}

func (ActorModel) TableName() string {
	return "actors"
}

func (a *ActorModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

type DirectorModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	FirstName string    `gorm:"type:varchar(100);not null;index" json:"first_name"`
	LastName  string    `gorm:"type:varchar(100);not null;index" json:"last_name"`
	Country   string    `gorm:"type:varchar(100);index" json:"country"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (DirectorModel) TableName() string {
	return "directors"
}

func (d *DirectorModel) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}
