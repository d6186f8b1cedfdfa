package http

import (
	"net/http"

	"streamhub/internal/usecase"
	"streamhub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *logger.Logger
}

func NewUserHandler(userUseCase usecase.UserUseCase, logger *logger.Logger) *UserHandler {
	return &UserHandler{userUseCase: userUseCase, logger: logger}
}

// ListUsers godoc
// @Summary      List accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        skip query int false "Offset"
// @Param        limit query int false "Page size"
// @Success      200  {object}  map[string]interface{}
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	skip, limit := pagination(c)
	users, err := h.userUseCase.ListUsers(skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, users)
}

// GetUser godoc
// @Summary      Get one account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User id"
// @Success      200  {object}  entity.User
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userUseCase.GetUser(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type UpdateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3,max=50"`
	Email    *string `json:"email" binding:"omitempty,email"`
}

// UpdateUser godoc
// @Summary      Update an account
// @Description  Only the fields present in the body change
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User id"
// @Param        request body UpdateUserRequest true "Fields to change"
// @Success      200  {object}  entity.User
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUseCase.UpdateUser(c.Param("id"), usecase.UserUpdate{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary      Delete an account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userUseCase.DeleteUser(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SetActive godoc
// @Summary      Activate or deactivate an account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User id"
// @Param        request body SetActiveRequest true "Target state"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id}/active [put]
func (h *UserHandler) SetActive(c *gin.Context) {
	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.userUseCase.SetActive(c.Param("id"), *req.Active); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User state updated"})
}

type PromoteRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Address   string `json:"address"`
	Country   string `json:"country"`
}

// PromoteToAdmin godoc
// @Summary      Promote an account to admin
// @Description  Creates the admin profile and flips the superuser flag in one transaction
// @Tags         admins
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User id"
// @Param        request body PromoteRequest true "Admin profile"
// @Success      201  {object}  entity.Admin
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /users/{id}/promote [post]
func (h *UserHandler) PromoteToAdmin(c *gin.Context) {
	var req PromoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, err := h.userUseCase.PromoteToAdmin(c.Param("id"), usecase.AdminProfile{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		Country:   req.Country,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, admin)
}

// DemoteAdmin godoc
// @Summary      Demote an admin back to a regular account
// @Tags         admins
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id}/demote [post]
func (h *UserHandler) DemoteAdmin(c *gin.Context) {
	if err := h.userUseCase.DemoteAdmin(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin demoted"})
}

// ListAdmins godoc
// @Summary      List admin profiles
// @Tags         admins
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /admins [get]
func (h *UserHandler) ListAdmins(c *gin.Context) {
	admins, err := h.userUseCase.ListAdmins()
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, admins)
}
