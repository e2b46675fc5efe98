package repositories

import (
	"context"
	"fmt"
	"time"

	"bar-bike/models"
	"bar-bike/store"
)

type UserRepository struct {
	table *store.Table[models.User]
	newID func() string
	now   func() time.Time
}

type UserRepositoryOption func(*UserRepository)

func WithUserIDs(newID func() string) UserRepositoryOption {
	return func(r *UserRepository) { r.newID = newID }
}

func WithClock(now func() time.Time) UserRepositoryOption {
	return func(r *UserRepository) { r.now = now }
}

// NewUserRepository writes the default admin when the users table is empty,
// whether the key is absent or holds an empty (or unreadable) collection.
func NewUserRepository(ctx context.Context, table *store.Table[models.User], opts ...UserRepositoryOption) (*UserRepository, error) {
	r := &UserRepository{
		table: table,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.newID == nil {
		r.newID = func() string { return fmt.Sprintf("%d", r.now().UnixMilli()) }
	}

	if err := r.seed(ctx); err != nil {
		return nil, fmt.Errorf("initialize users: %w", err)
	}
	return r, nil
}

func (r *UserRepository) seed(ctx context.Context) error {
	users, err := r.table.Read(ctx)
	if err != nil || len(users) > 0 {
		return err
	}
	return r.table.Update(ctx, func(users []models.User) ([]models.User, error) {
		if len(users) > 0 {
			return users, nil
		}
		return []models.User{models.DefaultAdmin(r.now())}, nil
	})
}

func (r *UserRepository) ListAll(ctx context.Context) ([]models.User, error) {
	return r.table.Read(ctx)
}

// Authenticate returns the first user matching both username and password
// exactly. A miss is reported through ok, never as an error.
func (r *UserRepository) Authenticate(ctx context.Context, username, password string) (*models.User, bool, error) {
	users, err := r.table.Read(ctx)
	if err != nil {
		return nil, false, err
	}
	for i := range users {
		if users[i].Username == username && users[i].Password == password {
			return &users[i], true, nil
		}
	}
	return nil, false, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	users, err := r.table.Read(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	users, err := r.table.Read(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

// Create appends a new account with a fresh id and createdAt. It fails with
// ErrDuplicateUsername when the username is already taken.
func (r *UserRepository) Create(ctx context.Context, candidate models.NewUser) (models.User, error) {
	var created models.User
	err := r.table.Update(ctx, func(users []models.User) ([]models.User, error) {
		for _, u := range users {
			if u.Username == candidate.Username {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateUsername, candidate.Username)
			}
		}

		created = models.User{
			ID:        r.newID(),
			Username:  candidate.Username,
			Password:  candidate.Password,
			FullName:  candidate.FullName,
			Role:      candidate.Role,
			CreatedAt: r.now(),
		}
		return append(users, created), nil
	})
	if err != nil {
		return models.User{}, err
	}
	return created, nil
}

// Delete removes the account with id. It refuses with ErrLastAccount while
// the table holds a single account, whichever id is targeted.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.table.Update(ctx, func(users []models.User) ([]models.User, error) {
		if len(users) <= 1 {
			return nil, ErrLastAccount
		}
		kept := make([]models.User, 0, len(users))
		for _, u := range users {
			if u.ID != id {
				kept = append(kept, u)
			}
		}
		return kept, nil
	})
}
