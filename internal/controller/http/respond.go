package http

import (
	"errors"
	"net/http"
	"strconv"

	"streamhub/internal/entity"

	"github.com/gin-gonic/gin"
)

// respondError maps a domain error to an HTTP status. Unknown errors become
// a generic 500 so internals never leak to clients.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrValidation), errors.Is(err, entity.ErrRatingRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrAccountNotVerified), errors.Is(err, entity.ErrAccountInactive):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrForbidden), errors.Is(err, entity.ErrSuperuserSubuser):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrConflict), errors.Is(err, entity.ErrSubuserLimit):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// respondList always returns 200. An empty result carries items:[] and a
// detail message instead of a 404.
func respondList[T any](c *gin.Context, items []T) {
	if len(items) == 0 {
		c.JSON(http.StatusOK, gin.H{"items": []T{}, "detail": "no more results"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// pagination reads skip/limit query params with the listing defaults.
func pagination(c *gin.Context) (int, int) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 100
	}
	return skip, limit
}
