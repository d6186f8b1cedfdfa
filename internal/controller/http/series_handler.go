package http

import (
	"net/http"
	"strconv"

	"streamhub/internal/entity"
	"streamhub/internal/usecase"
	"streamhub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type SeriesHandler struct {
	seriesUseCase usecase.SeriesUseCase
	logger        *logger.Logger
}

func NewSeriesHandler(seriesUseCase usecase.SeriesUseCase, logger *logger.Logger) *SeriesHandler {
	return &SeriesHandler{seriesUseCase: seriesUseCase, logger: logger}
}

type CreateSeriesRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	YearPublished int    `json:"year_published" binding:"required,min=1888"`
	DirectorID    string `json:"director_id" binding:"required,uuid"`
	GenreID       string `json:"genre_id" binding:"required,uuid"`
}

// CreateSeries godoc
// @Summary      Add a series to the catalog
// @Description  Title must be unique per director
// @Tags         series
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateSeriesRequest true "Series data"
// @Success      201  {object}  entity.Series
// @Failure      409  {object}  map[string]string
// @Router       /series [post]
func (h *SeriesHandler) CreateSeries(c *gin.Context) {
	var req CreateSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	series := &entity.Series{
		Title:         req.Title,
		Description:   req.Description,
		YearPublished: req.YearPublished,
		DirectorID:    req.DirectorID,
		GenreID:       req.GenreID,
	}
	if err := h.seriesUseCase.CreateSeries(series); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, series)
}

// ListSeries godoc
// @Summary      List series
// @Description  Filterable by title substring, director, genre or recency
// @Tags         series
// @Produce      json
// @Security     BearerAuth
// @Param        title query string false "Title substring"
// @Param        director_id query string false "Director id"
// @Param        genre_id query string false "Genre id"
// @Param        latest_days query int false "Only series added in the last N days"
// @Param        skip query int false "Offset"
// @Param        limit query int false "Page size"
// @Success      200  {object}  map[string]interface{}
// @Router       /series [get]
func (h *SeriesHandler) ListSeries(c *gin.Context) {
	var (
		series []*entity.Series
		err    error
	)

	switch {
	case c.Query("title") != "":
		series, err = h.seriesUseCase.SearchSeriesByTitle(c.Query("title"))
	case c.Query("director_id") != "":
		series, err = h.seriesUseCase.GetSeriesByDirector(c.Query("director_id"))
	case c.Query("genre_id") != "":
		series, err = h.seriesUseCase.GetSeriesByGenre(c.Query("genre_id"))
	case c.Query("latest_days") != "":
		days, convErr := strconv.Atoi(c.Query("latest_days"))
		if convErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "latest_days must be a number"})
			return
		}
		series, err = h.seriesUseCase.GetLatestSeries(days)
	default:
		skip, limit := pagination(c)
		series, err = h.seriesUseCase.ListSeries(skip, limit)
	}

	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, series)
}

// GetSeries godoc
// @Summary      Get one series with episodes, director, genre and cast
// @Tags         series
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Series id"
// @Success      200  {object}  entity.Series
// @Failure      404  {object}  map[string]string
// @Router       /series/{id} [get]
func (h *SeriesHandler) GetSeries(c *gin.Context) {
	series, err := h.seriesUseCase.GetSeries(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

type UpdateSeriesRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	YearPublished *int    `json:"year_published" binding:"omitempty,min=1888"`
	DirectorID    *string `json:"director_id" binding:"omitempty,uuid"`
	GenreID       *string `json:"genre_id" binding:"omitempty,uuid"`
}

// UpdateSeries godoc
// @Summary      Update a series
// @Description  Only the fields present in the body change
// @Tags         series
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Series id"
// @Param        request body UpdateSeriesRequest true "Fields to change"
// @Success      200  {object}  entity.Series
// @Failure      404  {object}  map[string]string
// @Router       /series/{id} [put]
func (h *SeriesHandler) UpdateSeries(c *gin.Context) {
	var req UpdateSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	series, err := h.seriesUseCase.UpdateSeries(c.Param("id"), usecase.SeriesUpdate{
		Title:         req.Title,
		Description:   req.Description,
		YearPublished: req.YearPublished,
		DirectorID:    req.DirectorID,
		GenreID:       req.GenreID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

// DeleteSeries godoc
// @Summary      Delete a series and all of its episodes
// @Tags         series
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Series id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /series/{id} [delete]
func (h *SeriesHandler) DeleteSeries(c *gin.Context) {
	if err := h.seriesUseCase.DeleteSeries(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Series deleted"})
}

// AddActor godoc
// @Summary      Add an actor to a series' cast
// @Tags         series
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Series id"
// @Param        actorID path string true "Actor id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /series/{id}/actors/{actorID} [post]
func (h *SeriesHandler) AddActor(c *gin.Context) {
	if err := h.seriesUseCase.AddActorToSeries(c.Param("id"), c.Param("actorID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Actor added to cast"})
}

// RemoveActor godoc
// @Summary      Remove an actor from a series' cast
// @Tags         series
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Series id"
// @Param        actorID path string true "Actor id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /series/{id}/actors/{actorID} [delete]
func (h *SeriesHandler) RemoveActor(c *gin.Context) {
	if err := h.seriesUseCase.RemoveActorFromSeries(c.Param("id"), c.Param("actorID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Actor removed from cast"})
}

// UploadPoster godoc
// @Summary      Upload poster artwork for a series
// @Tags         series
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Series id"
// @Param        poster formData file true "Poster image (jpg/png)"
// @Success      200  {object}  entity.Series
// @Failure      404  {object}  map[string]string
// @Router       /series/{id}/poster [post]
func (h *SeriesHandler) UploadPoster(c *gin.Context) {
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
	series, err := h.seriesUseCase.UploadPoster(c.Param("id"), file, contentType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

type CreateEpisodeRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateEpisode godoc
// @Summary      Add an episode to a series
// @Tags         episodes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Series id"
// @Param        request body CreateEpisodeRequest true "Episode name"
// @Success      201  {object}  entity.Episode
// @Failure      404  {object}  map[string]string
// @Router       /series/{id}/episodes [post]
func (h *SeriesHandler) CreateEpisode(c *gin.Context) {
	var req CreateEpisodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	episode := &entity.Episode{
		Name:     req.Name,
		SeriesID: c.Param("id"),
	}
	if err := h.seriesUseCase.CreateEpisode(episode); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, episode)
}

// ListEpisodes godoc
// @Summary      List a series' episodes
// @Tags         episodes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Series id"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /series/{id}/episodes [get]
func (h *SeriesHandler) ListEpisodes(c *gin.Context) {
	episodes, err := h.seriesUseCase.ListEpisodes(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, episodes)
}

// GetEpisode godoc
// @Summary      Get one episode
// @Tags         episodes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Episode id"
// @Success      200  {object}  entity.Episode
// @Failure      404  {object}  map[string]string
// @Router       /episodes/{id} [get]
func (h *SeriesHandler) GetEpisode(c *gin.Context) {
	episode, err := h.seriesUseCase.GetEpisode(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, episode)
}

// SearchEpisodes godoc
// @Summary      Search episodes by name
// @Tags         episodes
// @Produce      json
// @Security     BearerAuth
// @Param        name query string true "Name substring"
// @Success      200  {object}  map[string]interface{}
// @Router       /episodes [get]
func (h *SeriesHandler) SearchEpisodes(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name query parameter is required"})
		return
	}

	episodes, err := h.seriesUseCase.SearchEpisodesByName(name)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, episodes)
}

type RenameEpisodeRequest struct {
	Name string `json:"name" binding:"required"`
}

// RenameEpisode godoc
// @Summary      Rename an episode
// @Tags         episodes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Episode id"
// @Param        request body RenameEpisodeRequest true "New name"
// @Success      200  {object}  entity.Episode
// @Failure      404  {object}  map[string]string
// @Router       /episodes/{id} [put]
func (h *SeriesHandler) RenameEpisode(c *gin.Context) {
	var req RenameEpisodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	episode, err := h.seriesUseCase.RenameEpisode(c.Param("id"), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, episode)
}

// DeleteEpisode godoc
// @Summary      Delete an episode
// @Tags         episodes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Episode id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /episodes/{id} [delete]
func (h *SeriesHandler) DeleteEpisode(c *gin.Context) {
	if err := h.seriesUseCase.DeleteEpisode(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Episode deleted"})
}
