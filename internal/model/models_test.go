package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserModel_BeforeCreate(t *testing.T) {
	user := &UserModel{
		Email:    "test@example.com",
		Username: "testuser",
		Password: "hashed",
		IsActive: true,
	}

	// BeforeCreate should set ID if empty
	err := user.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
}

func TestUserModel_BeforeCreate_WithID(t *testing.T) {
	existingID := "existing-id-123"
	user := &UserModel{
		ID:       existingID,
		Email:    "test@example.com",
		Username: "testuser",
		Password: "hashed",
	}

	err := user.BeforeCreate(nil)
	assert.NoError(t, err)
	// ID should remain unchanged if already set
	assert.Equal(t, existingID, user.ID)
}

func TestGenreModel_BeforeCreate(t *testing.T) {
	genre := &GenreModel{Name: "Action"}

	err := genre.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, genre.ID)
}

func TestMovieModel_BeforeCreate(t *testing.T) {
	movie := &MovieModel{
		Title:      "Test Movie",
		DirectorID: "director-123",
		GenreID:    "genre-123",
	}

	err := movie.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, movie.ID)
}

func TestSeriesModel_BeforeCreate(t *testing.T) {
	series := &SeriesModel{
		Title:      "Test Series",
		DirectorID: "director-123",
		GenreID:    "genre-123",
	}

	err := series.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, series.ID)
}

func TestEpisodeModel_BeforeCreate(t *testing.T) {
	episode := &EpisodeModel{Name: "Pilot", SeriesID: "series-123"}

	err := episode.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, episode.ID)
}

func TestActorModel_BeforeCreate(t *testing.T) {
	actor := &ActorModel{FirstName: "Jane", LastName: "Doe"}

	err := actor.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, actor.ID)
}

func TestSubuserModel_BeforeCreate(t *testing.T) {
	subuser := &SubuserModel{Name: "kids", UserID: "user-123"}

	err := subuser.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, subuser.ID)
}

func TestMovieWatchModel_BeforeCreate(t *testing.T) {
	watch := &MovieWatchModel{UserID: "user-123", MovieID: "movie-123"}

	err := watch.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, watch.ID)
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "users", UserModel{}.TableName())
	assert.Equal(t, "subusers", SubuserModel{}.TableName())
	assert.Equal(t, "admins", AdminModel{}.TableName())
	assert.Equal(t, "actors", ActorModel{}.TableName())
	assert.Equal(t, "directors", DirectorModel{}.TableName())
	assert.Equal(t, "genres", GenreModel{}.TableName())
	assert.Equal(t, "movies", MovieModel{}.TableName())
	assert.Equal(t, "series", SeriesModel{}.TableName())
	assert.Equal(t, "episodes", EpisodeModel{}.TableName())
	assert.Equal(t, "user_watch_movies", MovieWatchModel{}.TableName())
	assert.Equal(t, "user_watch_episodes", EpisodeWatchModel{}.TableName())
}
