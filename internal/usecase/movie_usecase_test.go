package usecase

import (
	"testing"
	"time"

	"streamhub/internal/entity"
	"streamhub/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func strPtr(v string) *string { return &v }

func TestUpdateMovie_OnlyNamedFieldsChange(t *testing.T) {
	mockMovieRepo := new(MockMovieRepository)
	uc := NewMovieUseCase(mockMovieRepo, nil, nil, logger.New())

	movie := &entity.Movie{
		ID:            "movie-1",
		Title:         "Old Title",
		YearPublished: 1999,
		DirectorID:    "dir-1",
		GenreID:       "genre-1",
	}
	mockMovieRepo.On("GetByID", "movie-1").Return(movie, nil)

	var saved *entity.Movie
	mockMovieRepo.On("Update", mock.AnythingOfType("*entity.Movie")).Run(func(args mock.Arguments) {
		saved = args.Get(0).(*entity.Movie)
	}).Return(nil)

	_, err := uc.UpdateMovie("movie-1", MovieUpdate{Title: strPtr("New Title")})

	assert.NoError(t, err)
	assert.Equal(t, "New Title", saved.Title)
	assert.Equal(t, 1999, saved.YearPublished)
	assert.Equal(t, "dir-1", saved.DirectorID)
	assert.Equal(t, "genre-1", saved.GenreID)
	mockMovieRepo.AssertExpectations(t)
}

func TestUpdateMovie_NotFound(t *testing.T) {
	mockMovieRepo := new(MockMovieRepository)
	uc := NewMovieUseCase(mockMovieRepo, nil, nil, logger.New())

	mockMovieRepo.On("GetByID", "missing").Return(nil, entity.ErrNotFound)

	_, err := uc.UpdateMovie("missing", MovieUpdate{Title: strPtr("New Title")})

	assert.ErrorIs(t, err, entity.ErrNotFound)
	mockMovieRepo.AssertNotCalled(t, "Update")
}

func TestAddActorToMovie_UnknownActor(t *testing.T) {
	mockMovieRepo := new(MockMovieRepository)
	mockActorRepo := new(MockActorRepository)
	uc := NewMovieUseCase(mockMovieRepo, mockActorRepo, nil, logger.New())

	mockMovieRepo.On("GetByID", "movie-1").Return(&entity.Movie{ID: "movie-1"}, nil)
	mockActorRepo.On("GetByID", "missing").Return(nil, entity.ErrNotFound)

	err := uc.AddActorToMovie("movie-1", "missing")

	assert.ErrorIs(t, err, entity.ErrNotFound)
	mockMovieRepo.AssertNotCalled(t, "AddActor")
}

func TestAddActorToMovie_Success(t *testing.T) {
	mockMovieRepo := new(MockMovieRepository)
	mockActorRepo := new(MockActorRepository)
	uc := NewMovieUseCase(mockMovieRepo, mockActorRepo, nil, logger.New())

	mockMovieRepo.On("GetByID", "movie-1").Return(&entity.Movie{ID: "movie-1"}, nil)
	mockActorRepo.On("GetByID", "actor-1").Return(&entity.Actor{ID: "actor-1"}, nil)
	mockMovieRepo.On("AddActor", "movie-1", "actor-1").Return(nil)

	err := uc.AddActorToMovie("movie-1", "actor-1")

	assert.NoError(t, err)
	mockMovieRepo.AssertExpectations(t)
}

func TestGetLatestMovies_DefaultWindow(t *testing.T) {
	mockMovieRepo := new(MockMovieRepository)
	uc := NewMovieUseCase(mockMovieRepo, nil, nil, logger.New())

	mockMovieRepo.On("GetLatest", mock.MatchedBy(func(cutoff time.Time) bool {
		expected := time.Now().AddDate(0, 0, -30)
		return cutoff.Sub(expected).Abs() < time.Minute
	})).Return([]*entity.Movie{}, nil)

	got, err := uc.GetLatestMovies(0)

	assert.NoError(t, err)
	assert.Empty(t, got)
	mockMovieRepo.AssertExpectations(t)
}
