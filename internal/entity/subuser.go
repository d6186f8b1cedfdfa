package entity

import "time"

type Subuser struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	DateSubscribed time.Time `json:"date_subscribed"`
	UserID         string    `json:"user_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
