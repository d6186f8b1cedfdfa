package http

import (
	"net/http"

	"streamhub/internal/usecase"
	"streamhub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type WatchHandler struct {
	watchUseCase usecase.WatchUseCase
	logger       *logger.Logger
}

func NewWatchHandler(watchUseCase usecase.WatchUseCase, logger *logger.Logger) *WatchHandler {
	return &WatchHandler{watchUseCase: watchUseCase, logger: logger}
}

type WatchRequest struct {
	Rating *int `json:"rating" binding:"omitempty,min=1,max=10"`
}

// WatchMovie godoc
// @Summary      Record a movie watch with an optional rating
// @Description  Rewatching the same movie updates the stored rating and date
// @Tags         watch
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Movie id"
// @Param        request body WatchRequest false "Optional rating 1..10"
// @Success      200  {object}  entity.MovieWatch
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /watch/movies/{id} [post]
func (h *WatchHandler) WatchMovie(c *gin.Context) {
	var req WatchRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	watch, err := h.watchUseCase.WatchMovie(c.GetString("user_id"), c.Param("id"), req.Rating)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, watch)
}

// WatchEpisode godoc
// @Summary      Record an episode watch with an optional rating
// @Description  Rewatching the same episode updates the stored rating and date
// @Tags         watch
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Episode id"
// @Param        request body WatchRequest false "Optional rating 1..10"
// @Success      200  {object}  entity.EpisodeWatch
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /watch/episodes/{id} [post]
func (h *WatchHandler) WatchEpisode(c *gin.Context) {
	var req WatchRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	watch, err := h.watchUseCase.WatchEpisode(c.GetString("user_id"), c.Param("id"), req.Rating)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, watch)
}

// MovieHistory godoc
// @Summary      The caller's movie watch history
// @Tags         watch
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /watch/movies [get]
func (h *WatchHandler) MovieHistory(c *gin.Context) {
	history, err := h.watchUseCase.GetMovieHistory(c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, history)
}

// EpisodeHistory godoc
// @Summary      The caller's episode watch history
// @Tags         watch
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /watch/episodes [get]
func (h *WatchHandler) EpisodeHistory(c *gin.Context) {
	history, err := h.watchUseCase.GetEpisodeHistory(c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, history)
}
