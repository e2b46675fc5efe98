package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bar-bike/models"
	"bar-bike/repositories"
	"bar-bike/utils"
)

const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextUserRole = "user_role"
)

func AuthMiddleware(tokens *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Authorization header required",
			})
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid authorization header format",
			})
			return
		}

		claims, err := tokens.ValidateToken(tokenParts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid or expired token",
				Error:   err.Error(),
			})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextUserRole, claims.Role)
		c.Next()
	}
}

func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextUserRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "User role not found",
			})
			return
		}

		if role != string(models.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "Access denied. Admin role required",
			})
			return
		}

		c.Next()
	}
}

// UserLookup resolves the account a token was issued to.
type UserLookup interface {
	GetUserByID(ctx context.Context, id string) (*models.PublicUser, error)
}

// ActiveUserMiddleware runs after AuthMiddleware. It rejects tokens whose
// account has since been deleted and replaces the token's role with the
// stored one.
func ActiveUserMiddleware(users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := users.GetUserByID(c.Request.Context(), c.GetString(ContextUserID))
		if errors.Is(err, repositories.ErrUserNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Account no longer exists",
			})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
				Success: false,
				Message: "Failed to load account",
				Error:   err.Error(),
			})
			return
		}

		c.Set(ContextUsername, user.Username)
		c.Set(ContextUserRole, string(user.Role))
		c.Next()
	}
}
