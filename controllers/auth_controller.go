package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bar-bike/middleware"
	"bar-bike/models"
	"bar-bike/services"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// @Summary Login
// @Description Back-office login. Returns a Bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body models.LoginRequest true "Credentials"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := ctrl.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Login failed")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Login successful",
		Data:    resp,
	})
}

// @Summary Current user profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/profile [get]
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	profile, err := ctrl.authService.GetProfile(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		respondError(c, err, "Profile not found")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Profile retrieved",
		Data:    profile,
	})
}
