package http

import (
	"net/http"
	"strconv"

	"streamhub/internal/entity"
	"streamhub/internal/usecase"
	"streamhub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	movieUseCase usecase.MovieUseCase
	logger       *logger.Logger
}

func NewMovieHandler(movieUseCase usecase.MovieUseCase, logger *logger.Logger) *MovieHandler {
	return &MovieHandler{movieUseCase: movieUseCase, logger: logger}
}

type CreateMovieRequest struct {
	Title         string `json:"title" binding:"required"`
	YearPublished int    `json:"year_published" binding:"required,min=1888"`
	DirectorID    string `json:"director_id" binding:"required,uuid"`
	GenreID       string `json:"genre_id" binding:"required,uuid"`
}

// CreateMovie godoc
// @Summary      Add a movie to the catalog
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateMovieRequest true "Movie data"
// @Success      201  {object}  entity.Movie
// @Failure      400  {object}  map[string]string
// @Router       /movies [post]
func (h *MovieHandler) CreateMovie(c *gin.Context) {
	var req CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movie := &entity.Movie{
		Title:         req.Title,
		YearPublished: req.YearPublished,
		DirectorID:    req.DirectorID,
		GenreID:       req.GenreID,
	}
	if err := h.movieUseCase.CreateMovie(movie); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, movie)
}

// ListMovies godoc
// @Summary      List movies
// @Description  Filterable by title substring, director, genre or recency
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        title query string false "Title substring"
// @Param        director_id query string false "Director id"
// @Param        genre_id query string false "Genre id"
// @Param        latest_days query int false "Only movies added in the last N days"
// @Param        skip query int false "Offset"
// @Param        limit query int false "Page size"
// @Success      200  {object}  map[string]interface{}
// @Router       /movies [get]
func (h *MovieHandler) ListMovies(c *gin.Context) {
	var (
		movies []*entity.Movie
		err    error
	)

	switch {
	case c.Query("title") != "":
		movies, err = h.movieUseCase.SearchMoviesByTitle(c.Query("title"))
	case c.Query("director_id") != "":
		movies, err = h.movieUseCase.GetMoviesByDirector(c.Query("director_id"))
	case c.Query("genre_id") != "":
		movies, err = h.movieUseCase.GetMoviesByGenre(c.Query("genre_id"))
	case c.Query("latest_days") != "":
		days, convErr := strconv.Atoi(c.Query("latest_days"))
		if convErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "latest_days must be a number"})
			return
		}
		movies, err = h.movieUseCase.GetLatestMovies(days)
	default:
		skip, limit := pagination(c)
		movies, err = h.movieUseCase.ListMovies(skip, limit)
	}

	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, movies)
}

// GetMovie godoc
// @Summary      Get one movie with its director, genre and cast
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Movie id"
// @Success      200  {object}  entity.Movie
// @Failure      404  {object}  map[string]string
// @Router       /movies/{id} [get]
func (h *MovieHandler) GetMovie(c *gin.Context) {
	movie, err := h.movieUseCase.GetMovie(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

type UpdateMovieRequest struct {
	Title         *string `json:"title"`
	YearPublished *int    `json:"year_published" binding:"omitempty,min=1888"`
	DirectorID    *string `json:"director_id" binding:"omitempty,uuid"`
	GenreID       *string `json:"genre_id" binding:"omitempty,uuid"`
}

// UpdateMovie godoc
// @Summary      Update a movie
// @Description  Only the fields present in the body change
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Movie id"
// @Param        request body UpdateMovieRequest true "Fields to change"
// @Success      200  {object}  entity.Movie
// @Failure      404  {object}  map[string]string
// @Router       /movies/{id} [put]
func (h *MovieHandler) UpdateMovie(c *gin.Context) {
	var req UpdateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movie, err := h.movieUseCase.UpdateMovie(c.Param("id"), usecase.MovieUpdate{
		Title:         req.Title,
		YearPublished: req.YearPublished,
		DirectorID:    req.DirectorID,
		GenreID:       req.GenreID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

// DeleteMovie godoc
// @Summary      Delete a movie
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Movie id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(c *gin.Context) {
	if err := h.movieUseCase.DeleteMovie(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Movie deleted"})
}

// AddActor godoc
// @Summary      Add an actor to a movie's cast
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Movie id"
// @Param        actorID path string true "Actor id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /movies/{id}/actors/{actorID} [post]
func (h *MovieHandler) AddActor(c *gin.Context) {
	if err := h.movieUseCase.AddActorToMovie(c.Param("id"), c.Param("actorID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Actor added to cast"})
}

// RemoveActor godoc
// @Summary      Remove an actor from a movie's cast
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Movie id"
// @Param        actorID path string true "Actor id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /movies/{id}/actors/{actorID} [delete]
func (h *MovieHandler) RemoveActor(c *gin.Context) {
	if err := h.movieUseCase.RemoveActorFromMovie(c.Param("id"), c.Param("actorID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Actor removed from cast"})
}

// UploadPoster godoc
// @Summary      Upload poster artwork for a movie
// @Tags         movies
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Movie id"
// @Param        poster formData file true "Poster image (jpg/png)"
// @Success      200  {object}  entity.Movie
// @Failure      404  {object}  map[string]string
// @Router       /movies/{id}/poster [post]
func (h *MovieHandler) UploadPoster(c *gin.Context) {
	fileHeader, err := c.FormFile("poster")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Poster file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read poster file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	movie, err := h.movieUseCase.UploadPoster(c.Param("id"), file, contentType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}
