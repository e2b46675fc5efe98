package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bar-bike/middleware"
	"bar-bike/models"
	"bar-bike/services"
)

type UserController struct {
	userService *services.UserService
}

func NewUserController(userService *services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// @Summary List back-office users
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ListResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /admin/users [get]
func (ctrl *UserController) GetAllUsers(c *gin.Context) {
	users, err := ctrl.userService.GetAllUsers(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve users")
		return
	}

	c.JSON(http.StatusOK, models.ListResponse{
		Success: true,
		Message: "Users retrieved successfully",
		Data:    users,
		Total:   len(users),
	})
}

// @Summary Create back-office user
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.CreateUserRequest true "User"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/users [post]
func (ctrl *UserController) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := ctrl.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "User created successfully",
		Data:    user,
	})
}

// @Summary Delete back-office user
// @Description The last remaining account and the caller's own account cannot be deleted
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/users/{id} [delete]
func (ctrl *UserController) DeleteUser(c *gin.Context) {
	if err := ctrl.userService.DeleteUser(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete user")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "User deleted successfully",
	})
}
