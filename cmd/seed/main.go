package main

import (
	"fmt"
	"time"

	"streamhub/internal/model"
	"streamhub/pkg/config"
	"streamhub/pkg/database"
	"streamhub/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds a development database with a superuser account and a small catalog.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin12345"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := model.UserModel{
		Email:          "admin@streamhub.local",
		Username:       "admin",
		Password:       string(hash),
		DateSubscribed: time.Now(),
		IsActive:       true,
		IsSuperuser:    true,
	}
	if err := db.Where("email = ?", admin.Email).FirstOrCreate(&admin).Error; err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	log.Info("Superuser: %s", admin.Email)

	genres := []model.GenreModel{
		{Name: "Drama"},
		{Name: "Comedy"},
		{Name: "Science Fiction"},
		{Name: "Documentary"},
	}
	for i := range genres {
		if err := db.Where("name = ?", genres[i].Name).FirstOrCreate(&genres[i]).Error; err != nil {
			return fmt.Errorf("seed genre %s: %w", genres[i].Name, err)
		}
	}

	director := model.DirectorModel{
		FirstName: "Denis",
		LastName:  "Villeneuve",
		Country:   "Canada",
	}
	if err := db.Where("first_name = ? AND last_name = ?", director.FirstName, director.LastName).
		FirstOrCreate(&director).Error; err != nil {
		return fmt.Errorf("seed director: %w", err)
	}

	actors := []model.ActorModel{
		{FirstName: "Timothee", LastName: "Chalamet", DateOfBirth: time.Date(1995, 12, 27, 0, 0, 0, 0, time.UTC), Country: "USA"},
		{FirstName: "Rebecca", LastName: "Ferguson", DateOfBirth: time.Date(1983, 10, 19, 0, 0, 0, 0, time.UTC), Country: "Sweden"},
	}
	for i := range actors {
		if err := db.Where("first_name = ? AND last_name = ?", actors[i].FirstName, actors[i].LastName).
			FirstOrCreate(&actors[i]).Error; err != nil {
			return fmt.Errorf("seed actor: %w", err)
		}
	}

	movie := model.MovieModel{
		Title:         "Dune",
		DateAdded:     time.Now(),
		YearPublished: 2021,
		DirectorID:    director.ID,
		GenreID:       genres[2].ID,
	}
	if err := db.Where("title = ? AND director_id = ?", movie.Title, director.ID).
		FirstOrCreate(&movie).Error; err != nil {
		return fmt.Errorf("seed movie: %w", err)
	}
	if err := db.Model(&movie).Association("Actors").Replace(actors); err != nil {
		return fmt.Errorf("seed movie cast: %w", err)
	}

	series := model.SeriesModel{
		Title:         "Dune: Prophecy",
		Description:   "Sisterhood origins, ten thousand years before the films.",
		DateAdded:     time.Now(),
		YearPublished: 2024,
		DirectorID:    director.ID,
		GenreID:       genres[2].ID,
	}
	if err := db.Where("title = ? AND director_id = ?", series.Title, director.ID).
		FirstOrCreate(&series).Error; err != nil {
		return fmt.Errorf("seed series: %w", err)
	}

	episodes := []model.EpisodeModel{
		{Name: "The Hidden Hand", SeriesID: series.ID},
		{Name: "Two Wolves", SeriesID: series.ID},
	}
	for i := range episodes {
		if err := db.Where("name = ? AND series_id = ?", episodes[i].Name, series.ID).
			FirstOrCreate(&episodes[i]).Error; err != nil {
			return fmt.Errorf("seed episode: %w", err)
		}
	}

	return nil
}
