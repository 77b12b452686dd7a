package handlers

import (
	"errors"
	"net/http"

	"nursery_manager/internal/middleware"
	"nursery_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService   services.UserService
	adminPassword string
}

func NewAuthHandler(userService services.UserService, adminPassword string) *AuthHandler {
	return &AuthHandler{userService: userService, adminPassword: adminPassword}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	result, err := h.userService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.userService.Logout(c.Request.Context(), middleware.CurrentSession(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	profile, err := h.userService.Profile(middleware.CurrentSession(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	user, err := h.userService.Register(middleware.CurrentSession(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// InitAdmin is idempotent: once an admin exists it reports so with 200.
func (h *AuthHandler) InitAdmin(c *gin.Context) {
	if _, err := h.userService.InitAdmin(h.adminPassword); err != nil {
		if errors.Is(err, services.ErrAdminExists) {
			c.JSON(http.StatusOK, gin.H{"message": "Admin already exists"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin user created", "username": "admin"})
}
