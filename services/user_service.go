package services

import (
	"context"
	"strings"

	"bar-bike/models"
	"bar-bike/utils"
)

type UserStore interface {
	ListAll(ctx context.Context) ([]models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, bool, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, candidate models.NewUser) (models.User, error)
	Delete(ctx context.Context, id string) error
}

type UserService struct {
	userRepo        UserStore
	passwordHashing bool
}

func NewUserService(userRepo UserStore, passwordHashing bool) *UserService {
	return &UserService{
		userRepo:        userRepo,
		passwordHashing: passwordHashing,
	}
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]models.PublicUser, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (*models.PublicUser, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	public := user.Public()
	return &public, nil
}

func (s *UserService) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.PublicUser, error) {
	username := strings.TrimSpace(req.Username)
	fullName := strings.TrimSpace(req.FullName)
	if username == "" || req.Password == "" || fullName == "" {
		return nil, validationError("username, password and full name are required")
	}

	role := req.Role
	if role == "" {
		role = models.RoleAdmin
	}
	if !role.Valid() {
		return nil, validationError("unknown role %q", role)
	}

	password := req.Password
	if s.passwordHashing {
		hashed, err := utils.HashPassword(password)
		if err != nil {
			return nil, err
		}
		password = hashed
	}

	user, err := s.userRepo.Create(ctx, models.NewUser{
		Username: username,
		Password: password,
		FullName: fullName,
		Role:     role,
	})
	if err != nil {
		return nil, err
	}

	public := user.Public()
	return &public, nil
}

// DeleteUser removes id on behalf of actorID. Accounts cannot delete
// themselves, so the back office always keeps the admin who is using it.
func (s *UserService) DeleteUser(ctx context.Context, actorID, id string) error {
	if actorID != "" && actorID == id {
		return ErrSelfDelete
	}
	return s.userRepo.Delete(ctx, id)
}
