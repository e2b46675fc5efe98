package services

import (
	"context"
	"errors"

	"bar-bike/models"
	"bar-bike/repositories"
	"bar-bike/utils"
)

type AuthService struct {
	userRepo UserStore
	tokens   *utils.TokenIssuer
}

func NewAuthService(userRepo UserStore, tokens *utils.TokenIssuer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Login checks credentials and issues a back-office token. Plaintext
// accounts go through the repository's exact-match lookup; accounts whose
// stored password is an argon2 encoding are verified against the hash.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokens.GenerateToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		User:      user.Public(),
	}, nil
}

func (s *AuthService) authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, ok, err := s.userRepo.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if ok && !utils.IsHashed(user.Password) {
		return user, nil
	}

	candidate, err := s.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !utils.IsHashed(candidate.Password) {
		return nil, ErrInvalidCredentials
	}

	valid, err := utils.VerifyPassword(candidate.Password, password)
	if err != nil || !valid {
		return nil, ErrInvalidCredentials
	}
	return candidate, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID string) (*models.PublicUser, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	public := user.Public()
	return &public, nil
}
