package http

import (
	"net/http"

	"streamhub/internal/usecase"
	"streamhub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type SubuserHandler struct {
	subuserUseCase usecase.SubuserUseCase
	logger         *logger.Logger
}

func NewSubuserHandler(subuserUseCase usecase.SubuserUseCase, logger *logger.Logger) *SubuserHandler {
	return &SubuserHandler{subuserUseCase: subuserUseCase, logger: logger}
}

type CreateSubuserRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

// CreateSubuser godoc
// @Summary      Create a subuser profile
// @Description  Rejected once the per-account limit is reached or for superuser accounts
// @Tags         subusers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateSubuserRequest true "Profile name"
// @Success      201  {object}  entity.Subuser
// @Failure      403  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /subusers [post]
func (h *SubuserHandler) CreateSubuser(c *gin.Context) {
	var req CreateSubuserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subuser, err := h.subuserUseCase.CreateSubuser(c.GetString("user_id"), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, subuser)
}

// ListSubusers godoc
// @Summary      List the caller's subuser profiles
// @Tags         subusers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /subusers [get]
func (h *SubuserHandler) ListSubusers(c *gin.Context) {
	subusers, err := h.subuserUseCase.ListSubusers(c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, subusers)
}

// GetSubuserByName godoc
// @Summary      Get one of the caller's subusers by name
// @Tags         subusers
// @Produce      json
// @Security     BearerAuth
// @Param        name path string true "Profile name"
// @Success      200  {object}  entity.Subuser
// @Failure      404  {object}  map[string]string
// @Router       /subusers/by-name/{name} [get]
func (h *SubuserHandler) GetSubuserByName(c *gin.Context) {
	subuser, err := h.subuserUseCase.GetSubuserByName(c.GetString("user_id"), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subuser)
}

type RenameSubuserRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

// RenameSubuser godoc
// @Summary      Rename a subuser profile
// @Tags         subusers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Subuser id"
// @Param        request body RenameSubuserRequest true "New name"
// @Success      200  {object}  entity.Subuser
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /subusers/{id} [put]
func (h *SubuserHandler) RenameSubuser(c *gin.Context) {
	var req RenameSubuserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subuser, err := h.subuserUseCase.RenameSubuser(c.GetString("user_id"), c.Param("id"), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subuser)
}

// SubuserToken godoc
// @Summary      Issue a viewing token for one of the caller's subusers
// @Description  The token carries the restricted sub_user role
// @Tags         subusers
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Subuser id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /subusers/{id}/token [post]
func (h *SubuserHandler) SubuserToken(c *gin.Context) {
	token, err := h.subuserUseCase.SubuserToken(c.GetString("user_id"), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// DeleteSubuser godoc
// @Summary      Delete a subuser profile
// @Tags         subusers
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Subuser id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /subusers/{id} [delete]
func (h *SubuserHandler) DeleteSubuser(c *gin.Context) {
	if err := h.subuserUseCase.DeleteSubuser(c.GetString("user_id"), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subuser deleted"})
}
