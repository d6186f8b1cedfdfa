package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID             string    `gorm:"type:uuid;primary_key" json:"id"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Username       string    `gorm:"type:varchar(100);not null" json:"username"`
	Password       string    `gorm:"not null" json:"-"`
	DateSubscribed time.Time `json:"date_subscribed"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	IsSuperuser    bool      `gorm:"default:false" json:"is_superuser"`
	// NULL once the account is verified.
	VerificationCode *string   `gorm:"type:varchar(64);index" json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

type SubuserModel struct {
	ID             string    `gorm:"type:uuid;primary_key" json:"id"`
	Name           string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_subuser_name_user" json:"name"`
	DateSubscribed time.Time `json:"date_subscribed"`
	UserID         string    `gorm:"type:uuid;not null;uniqueIndex:idx_subuser_name_user;index" json:"user_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	User UserModel `gorm:"foreignKey:UserID" json:"-"`
}

func (SubuserModel) TableName() string {
	return "subusers"
}

func (s *SubuserModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

type AdminModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	FirstName string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Address   string    `gorm:"type:varchar(255)" json:"address"`
	Country   string    `gorm:"type:varchar(100)" json:"country"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User UserModel `gorm:"foreignKey:UserID" json:"-"`
}

func (AdminModel) TableName() string {
	return "admins"
}

func (a *AdminModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
