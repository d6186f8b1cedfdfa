package http

import (
	"net/http"

	"streamhub/internal/entity"
	"streamhub/internal/usecase"
	"streamhub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type GenreHandler struct {
	genreUseCase usecase.GenreUseCase
	logger       *logger.Logger
}

func NewGenreHandler(genreUseCase usecase.GenreUseCase, logger *logger.Logger) *GenreHandler {
	return &GenreHandler{genreUseCase: genreUseCase, logger: logger}
}

type GenreRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// CreateGenre godoc
// @Summary      Create a genre
// @Description  Genre names are unique
// @Tags         genres
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body GenreRequest true "Genre name"
// @Success      201  {object}  entity.Genre
// @Failure      409  {object}  map[string]string
// @Router       /genres [post]
func (h *GenreHandler) CreateGenre(c *gin.Context) {
	var req GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	genre := &entity.Genre{Name: req.Name}
	if err := h.genreUseCase.CreateGenre(genre); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, genre)
}

// ListGenres godoc
// @Summary      List genres
// @Tags         genres
// @Produce      json
// @Security     BearerAuth
// @Param        name query string false "Name substring"
// @Param        skip query int false "Offset"
// @Param        limit query int false "Page size"
// @Success      200  {object}  map[string]interface{}
// @Router       /genres [get]
func (h *GenreHandler) ListGenres(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		genres, err := h.genreUseCase.SearchGenresByName(name)
		if err != nil {
			respondError(c, err)
			return
		}
		respondList(c, genres)
		return
	}

	skip, limit := pagination(c)
	genres, err := h.genreUseCase.ListGenres(skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, genres)
}

// GetGenre godoc
// @Summary      Get one genre
// @Tags         genres
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Genre id"
// @Success      200  {object}  entity.Genre
// @Failure      404  {object}  map[string]string
// @Router       /genres/{id} [get]
func (h *GenreHandler) GetGenre(c *gin.Context) {
	genre, err := h.genreUseCase.GetGenre(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, genre)
}

// RenameGenre godoc
// @Summary      Rename a genre
// @Tags         genres
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Genre id"
// @Param        request body GenreRequest true "New name"
// @Success      200  {object}  entity.Genre
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /genres/{id} [put]
func (h *GenreHandler) RenameGenre(c *gin.Context) {
	var req GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	genre, err := h.genreUseCase.RenameGenre(c.Param("id"), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, genre)
}

// DeleteGenre godoc
// @Summary      Delete a genre
// @Tags         genres
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Genre id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /genres/{id} [delete]
func (h *GenreHandler) DeleteGenre(c *gin.Context) {
	if err := h.genreUseCase.DeleteGenre(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Genre deleted"})
}
