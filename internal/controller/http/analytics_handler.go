package http

import (
	"streamhub/internal/usecase"
	"streamhub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsUseCase usecase.AnalyticsUseCase
	logger           *logger.Logger
}

func NewAnalyticsHandler(analyticsUseCase usecase.AnalyticsUseCase, logger *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUseCase: analyticsUseCase, logger: logger}
}

// LeastPopularMovies godoc
// @Summary      Movies nobody has watched
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /analytics/movies/least-popular [get]
func (h *AnalyticsHandler) LeastPopularMovies(c *gin.Context) {
	movies, err := h.analyticsUseCase.LeastPopularMovies(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, movies)
}

// LeastPopularSeries godoc
// @Summary      Series with no watched episodes
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /analytics/series/least-popular [get]
func (h *AnalyticsHandler) LeastPopularSeries(c *gin.Context) {
	series, err := h.analyticsUseCase.LeastPopularSeries(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, series)
}

// MostWatchedSeries godoc
// @Summary      Series ranked by distinct viewer-episode pairs
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /analytics/series/most-watched [get]
func (h *AnalyticsHandler) MostWatchedSeries(c *gin.Context) {
	series, err := h.analyticsUseCase.MostWatchedSeries(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, series)
}

// BestRatedMovies godoc
// @Summary      Movies at the highest average rating
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /analytics/movies/best-rated [get]
func (h *AnalyticsHandler) BestRatedMovies(c *gin.Context) {
	titles, err := h.analyticsUseCase.BestRatedMovies(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, titles)
}

// WorstRatedMovies godoc
// @Summary      Movies at the lowest average rating
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /analytics/movies/worst-rated [get]
func (h *AnalyticsHandler) WorstRatedMovies(c *gin.Context) {
	titles, err := h.analyticsUseCase.WorstRatedMovies(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, titles)
}

// BestRatedSeries godoc
// @Summary      Series at the highest average episode rating
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /analytics/series/best-rated [get]
func (h *AnalyticsHandler) BestRatedSeries(c *gin.Context) {
	titles, err := h.analyticsUseCase.BestRatedSeries(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, titles)
}

// WorstRatedSeries godoc
// @Summary      Series at the lowest average episode rating
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /analytics/series/worst-rated [get]
func (h *AnalyticsHandler) WorstRatedSeries(c *gin.Context) {
	titles, err := h.analyticsUseCase.WorstRatedSeries(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, titles)
}

// RecommendedMovies godoc
// @Summary      Unwatched movies in the caller's favorite genres
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /analytics/movies/recommended [get]
func (h *AnalyticsHandler) RecommendedMovies(c *gin.Context) {
	movies, err := h.analyticsUseCase.RecommendedMovies(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, movies)
}

// RecommendedSeries godoc
// @Summary      Unwatched series in the caller's favorite genres
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /analytics/series/recommended [get]
func (h *AnalyticsHandler) RecommendedSeries(c *gin.Context) {
	series, err := h.analyticsUseCase.RecommendedSeries(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, series)
}
