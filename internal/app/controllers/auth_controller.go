package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/webslearn/webslearn/internal/app/models/dto"
	"github.com/webslearn/webslearn/internal/app/services"
	"github.com/webslearn/webslearn/internal/middleware"
	"github.com/webslearn/webslearn/internal/pkg/logger"
)

// AuthController handles registration, login and profile requests
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Register creates a new user account.
func (ac *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := ac.authService.Register(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	logger.Info().Int64("userID", resp.UserID).Str("role", string(req.Role)).Msg("User registered")
	c.JSON(http.StatusCreated, dto.APIResponse{Data: resp})
}

// Login verifies credentials and returns a bearer token.
func (ac *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := ac.authService.Login(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// GetProfile returns the authenticated user's account record.
func (ac *AuthController) GetProfile(c *gin.Context) {
	resp, err := ac.authService.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}
