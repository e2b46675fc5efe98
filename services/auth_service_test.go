package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bar-bike/models"
	"bar-bike/utils"
)

func TestAuthServiceLoginSeededAdmin(t *testing.T) {
	issuer := utils.NewTokenIssuer("test-secret", time.Hour)
	svc := NewAuthService(newTestUserRepo(t), issuer)

	resp, err := svc.Login(context.Background(), models.LoginRequest{Username: "admin", Password: "123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.User.Username)
	assert.NotEmpty(t, resp.Token)

	claims, err := issuer.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultAdminID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, claims.ExpiresAt.Unix(), resp.ExpiresAt)
}

func TestAuthServiceLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newTestUserRepo(t), utils.NewTokenIssuer("s", time.Hour))

	_, err := svc.Login(ctx, models.LoginRequest{Username: "admin", Password: "1234"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, models.LoginRequest{Username: "ADMIN", Password: "123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, models.LoginRequest{Username: "ghost", Password: "123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthServiceLoginHashedAccount(t *testing.T) {
	ctx := context.Background()
	repo := newTestUserRepo(t)
	_, err := NewUserService(repo, true).CreateUser(ctx, models.CreateUserRequest{
		Username: "editor1",
		Password: "s3cret",
		FullName: "Editor One",
		Role:     models.RoleEditor,
	})
	require.NoError(t, err)

	svc := NewAuthService(repo, utils.NewTokenIssuer("s", time.Hour))

	resp, err := svc.Login(ctx, models.LoginRequest{Username: "editor1", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleEditor, resp.User.Role)

	_, err = svc.Login(ctx, models.LoginRequest{Username: "editor1", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthServiceProfile(t *testing.T) {
	svc := NewAuthService(newTestUserRepo(t), utils.NewTokenIssuer("s", time.Hour))

	profile, err := svc.GetProfile(context.Background(), models.DefaultAdminID)
	require.NoError(t, err)
	assert.Equal(t, "מנהל ראשי", profile.FullName)
}

func TestAuthServiceRejectsStoredHashAsPassword(t *testing.T) {
	ctx := context.Background()
	repo := newTestUserRepo(t)
	_, err := NewUserService(repo, true).CreateUser(ctx, models.CreateUserRequest{
		Username: "editor1",
		Password: "s3cret",
		FullName: "Editor One",
	})
	require.NoError(t, err)

	stored, err := repo.FindByUsername(ctx, "editor1")
	require.NoError(t, err)
	require.True(t, utils.IsHashed(stored.Password))

	svc := NewAuthService(repo, utils.NewTokenIssuer("s", time.Hour))
	_, err = svc.Login(ctx, models.LoginRequest{Username: "editor1", Password: stored.Password})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
