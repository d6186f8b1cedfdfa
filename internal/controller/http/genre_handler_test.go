package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"streamhub/internal/entity"
	"streamhub/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockGenreUseCase is a mock implementation of GenreUseCase
type MockGenreUseCase struct {
	mock.Mock
}

func (m *MockGenreUseCase) CreateGenre(genre *entity.Genre) error {
	args := m.Called(genre)
	return args.Error(0)
}

func (m *MockGenreUseCase) ListGenres(skip, limit int) ([]*entity.Genre, error) {
	args := m.Called(skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Genre), args.Error(1)
}

func (m *MockGenreUseCase) GetGenre(id string) (*entity.Genre, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Genre), args.Error(1)
}

func (m *MockGenreUseCase) SearchGenresByName(name string) ([]*entity.Genre, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Genre), args.Error(1)
}

func (m *MockGenreUseCase) RenameGenre(id, name string) (*entity.Genre, error) {
	args := m.Called(id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Genre), args.Error(1)
}

func (m *MockGenreUseCase) DeleteGenre(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestCreateGenre_DuplicateName(t *testing.T) {
	mockUseCase := new(MockGenreUseCase)
	handler := NewGenreHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/genres", handler.CreateGenre)

	mockUseCase.On("CreateGenre", mock.AnythingOfType("*entity.Genre")).Return(entity.ErrConflict)

	body := `{"name":"Drama"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/genres", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListGenres_Empty(t *testing.T) {
	mockUseCase := new(MockGenreUseCase)
	handler := NewGenreHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/genres", handler.ListGenres)

	mockUseCase.On("ListGenres", 0, 100).Return([]*entity.Genre{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/genres", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "no more results", response["detail"])
	assert.Empty(t, response["items"])
}

func TestGetGenre_NotFound(t *testing.T) {
	mockUseCase := new(MockGenreUseCase)
	handler := NewGenreHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/genres/:id", handler.GetGenre)

	mockUseCase.On("GetGenre", "missing").Return(nil, entity.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/genres/missing", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListGenres_NameFilter(t *testing.T) {
	mockUseCase := new(MockGenreUseCase)
	handler := NewGenreHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/genres", handler.ListGenres)

	genres := []*entity.Genre{{ID: "genre-1", Name: "Drama"}}
	mockUseCase.On("SearchGenresByName", "dra").Return(genres, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/genres?name=dra", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertNotCalled(t, "ListGenres")
	mockUseCase.AssertExpectations(t)
}
