package http

import (
	"net/http"

	"streamhub/internal/entity"
	"streamhub/internal/usecase"
	"streamhub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type DirectorHandler struct {
	directorUseCase usecase.DirectorUseCase
	logger          *logger.Logger
}

func NewDirectorHandler(directorUseCase usecase.DirectorUseCase, logger *logger.Logger) *DirectorHandler {
	return &DirectorHandler{directorUseCase: directorUseCase, logger: logger}
}

type CreateDirectorRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Country   string `json:"country" binding:"required"`
}

// CreateDirector godoc
// @Summary      Create a director
// @Tags         directors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateDirectorRequest true "Director data"
// @Success      201  {object}  entity.Director
// @Failure      400  {object}  map[string]string
// @Router       /directors [post]
func (h *DirectorHandler) CreateDirector(c *gin.Context) {
	var req CreateDirectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	director := &entity.Director{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Country:   req.Country,
	}
	if err := h.directorUseCase.CreateDirector(director); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, director)
}

// ListDirectors godoc
// @Summary      List directors
// @Tags         directors
// @Produce      json
// @Security     BearerAuth
// @Param        name query string false "Name substring"
// @Param        country query string false "Country"
// @Param        skip query int false "Offset"
// @Param        limit query int false "Page size"
// @Success      200  {object}  map[string]interface{}
// @Router       /directors [get]
func (h *DirectorHandler) ListDirectors(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		directors, err := h.directorUseCase.SearchDirectorsByName(name)
		if err != nil {
			respondError(c, err)
			return
		}
		respondList(c, directors)
		return
	}
	if country := c.Query("country"); country != "" {
		directors, err := h.directorUseCase.SearchDirectorsByCountry(country)
		if err != nil {
			respondError(c, err)
			return
		}
		respondList(c, directors)
		return
	}

	skip, limit := pagination(c)
	directors, err := h.directorUseCase.ListDirectors(skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, directors)
}

// GetDirector godoc
// @Summary      Get one director
// @Tags         directors
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Director id"
// @Success      200  {object}  entity.Director
// @Failure      404  {object}  map[string]string
// @Router       /directors/{id} [get]
func (h *DirectorHandler) GetDirector(c *gin.Context) {
	director, err := h.directorUseCase.GetDirector(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, director)
}

type UpdateDirectorRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Country   *string `json:"country"`
}

// UpdateDirector godoc
// @Summary      Update a director
// @Tags         directors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Director id"
// @Param        request body UpdateDirectorRequest true "Fields to change"
// @Success      200  {object}  entity.Director
// @Failure      404  {object}  map[string]string
// @Router       /directors/{id} [put]
func (h *DirectorHandler) UpdateDirector(c *gin.Context) {
	var req UpdateDirectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	director, err := h.directorUseCase.UpdateDirector(c.Param("id"), usecase.DirectorUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Country:   req.Country,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, director)
}

// DeleteDirector godoc
// @Summary      Delete a director
// @Tags         directors
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Director id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /directors/{id} [delete]
func (h *DirectorHandler) DeleteDirector(c *gin.Context) {
	if err := h.directorUseCase.DeleteDirector(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Director deleted"})
}
