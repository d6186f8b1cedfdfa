package entity

import "time"

type Movie struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	DateAdded     time.Time `json:"date_added"`
	YearPublished int       `json:"year_published"`
	DirectorID    string    `json:"director_id"`
	GenreID       string    `json:"genre_id"`
	PosterURL     string    `json:"poster_url,omitempty"`
	Director      *Director `json:"director,omitempty"`
	Genre         *Genre    `json:"genre,omitempty"`
	Actors        []*Actor  `json:"actors,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
