package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bar-bike/logx"
	"bar-bike/models"
	"bar-bike/repositories"
	"bar-bike/services"
	"bar-bike/utils"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, utils.ErrFileTooLarge),
		errors.Is(err, utils.ErrInvalidFileType):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, repositories.ErrProductNotFound),
		errors.Is(err, repositories.ErrUserNotFound),
		errors.Is(err, services.ErrCartNotFound):
		return http.StatusNotFound
	case errors.Is(err, repositories.ErrDuplicateUsername),
		errors.Is(err, repositories.ErrLastAccount),
		errors.Is(err, services.ErrSelfDelete):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error envelope with the status the error maps to.
func respondError(c *gin.Context, err error, message string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logx.Error().Err(err).Str("path", c.FullPath()).Msg(message)
	}
	c.JSON(status, models.ErrorResponse{
		Success: false,
		Message: message,
		Error:   err.Error(),
	})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Message: "Invalid request body",
		Error:   err.Error(),
	})
}
