package http

import (
	"net/http"
	"time"

	"streamhub/internal/entity"
	"streamhub/internal/usecase"
	"streamhub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ActorHandler struct {
	actorUseCase usecase.ActorUseCase
	logger       *logger.Logger
}

func NewActorHandler(actorUseCase usecase.ActorUseCase, logger *logger.Logger) *ActorHandler {
	return &ActorHandler{actorUseCase: actorUseCase, logger: logger}
}

type CreateActorRequest struct {
	FirstName   string    `json:"first_name" binding:"required"`
	LastName    string    `json:"last_name" binding:"required"`
	DateOfBirth time.Time `json:"date_of_birth" binding:"required"`
	Country     string    `json:"country" binding:"required"`
}

// CreateActor godoc
// @Summary      Create an actor
// @Tags         actors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateActorRequest true "Actor data"
// @Success      201  {object}  entity.Actor
// @Failure      400  {object}  map[string]string
// @Router       /actors [post]
func (h *ActorHandler) CreateActor(c *gin.Context) {
	var req CreateActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := &entity.Actor{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
		Country:     req.Country,
	}
	if err := h.actorUseCase.CreateActor(actor); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, actor)
}

// ListActors godoc
// @Summary      List actors
// @Description  Optional name/country filters; paginated otherwise
// @Tags         actors
// @Produce      json
// @Security     BearerAuth
// @Param        name query string false "Name substring"
// @Param        country query string false "Country"
// @Param        skip query int false "Offset"
// @Param        limit query int false "Page size"
// @Success      200  {object}  map[string]interface{}
// @Router       /actors [get]
func (h *ActorHandler) ListActors(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		actors, err := h.actorUseCase.SearchActorsByName(name)
		if err != nil {
			respondError(c, err)
			return
		}
		respondList(c, actors)
		return
	}
	if country := c.Query("country"); country != "" {
		actors, err := h.actorUseCase.SearchActorsByCountry(country)
		if err != nil {
			respondError(c, err)
			return
		}
		respondList(c, actors)
		return
	}

	skip, limit := pagination(c)
	actors, err := h.actorUseCase.ListActors(skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, actors)
}

// GetActor godoc
// @Summary      Get one actor
// @Tags         actors
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Actor id"
// @Success      200  {object}  entity.Actor
// @Failure      404  {object}  map[string]string
// @Router       /actors/{id} [get]
func (h *ActorHandler) GetActor(c *gin.Context) {
	actor, err := h.actorUseCase.GetActor(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, actor)
}

// MovieCast godoc
// @Summary      List the actors of a movie
// @Tags         actors
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Movie id"
// @Success      200  {object}  map[string]interface{}
// @Router       /movies/{id}/actors [get]
func (h *ActorHandler) MovieCast(c *gin.Context) {
	actors, err := h.actorUseCase.GetActorsByMovie(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, actors)
}

// SeriesCast godoc
// @Summary      List the actors of a series
// @Tags         actors
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Series id"
// @Success      200  {object}  map[string]interface{}
// @Router       /series/{id}/actors [get]
func (h *ActorHandler) SeriesCast(c *gin.Context) {
	actors, err := h.actorUseCase.GetActorsBySeries(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, actors)
}

type UpdateActorRequest struct {
	FirstName   *string    `json:"first_name"`
	LastName    *string    `json:"last_name"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Country     *string    `json:"country"`
}

// UpdateActor godoc
// @Summary      Update an actor
// @Description  Only the fields present in the body change
// @Tags         actors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Actor id"
// @Param        request body UpdateActorRequest true "Fields to change"
// @Success      200  {object}  entity.Actor
// @Failure      404  {object}  map[string]string
// @Router       /actors/{id} [put]
func (h *ActorHandler) UpdateActor(c *gin.Context) {
	var req UpdateActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor, err := h.actorUseCase.UpdateActor(c.Param("id"), usecase.ActorUpdate{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
		Country:     req.Country,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, actor)
}

// DeleteActor godoc
// @Summary      Delete an actor
// @Tags         actors
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Actor id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /actors/{id} [delete]
func (h *ActorHandler) DeleteActor(c *gin.Context) {
	if err := h.actorUseCase.DeleteActor(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Actor deleted"})
}
