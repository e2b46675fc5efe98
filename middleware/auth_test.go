package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bar-bike/models"
	"bar-bike/repositories"
	"bar-bike/utils"
)

func newProtectedRouter(tokens *utils.TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(tokens), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextUsername))
	})
	r.GET("/admin", AuthMiddleware(tokens), AdminMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func get(r http.Handler, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	tokens := utils.NewTokenIssuer("mw-secret", time.Hour)
	r := newProtectedRouter(tokens)

	token, _, err := tokens.GenerateToken("1", "admin", "admin")
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "Token "+token).Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "Bearer garbage").Code)

	w := get(r, "/me", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", w.Body.String())
}

func TestAdminMiddleware(t *testing.T) {
	tokens := utils.NewTokenIssuer("mw-secret", time.Hour)
	r := newProtectedRouter(tokens)

	admin, _, err := tokens.GenerateToken("1", "admin", "admin")
	require.NoError(t, err)
	editor, _, err := tokens.GenerateToken("2", "dana", "editor")
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, get(r, "/admin", "Bearer "+admin).Code)
	assert.Equal(t, http.StatusForbidden, get(r, "/admin", "Bearer "+editor).Code)
}

type stubUsers map[string]models.PublicUser

func (s stubUsers) GetUserByID(_ context.Context, id string) (*models.PublicUser, error) {
	if id == "broken" {
		return nil, errors.New("backend down")
	}
	u, ok := s[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return &u, nil
}

func TestActiveUserMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := utils.NewTokenIssuer("mw-secret", time.Hour)
	users := stubUsers{
		"1": {ID: "1", Username: "admin", Role: models.RoleAdmin},
		"2": {ID: "2", Username: "dana", Role: models.RoleEditor},
	}

	r := gin.New()
	r.GET("/admin", AuthMiddleware(tokens), ActiveUserMiddleware(users), AdminMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	issue := func(id, role string) string {
		token, _, err := tokens.GenerateToken(id, "someone", role)
		require.NoError(t, err)
		return "Bearer " + token
	}

	assert.Equal(t, http.StatusNoContent, get(r, "/admin", issue("1", "admin")).Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/admin", issue("9", "admin")).Code)
	assert.Equal(t, http.StatusForbidden, get(r, "/admin", issue("2", "admin")).Code)
	assert.Equal(t, http.StatusInternalServerError, get(r, "/admin", issue("broken", "admin")).Code)
}
