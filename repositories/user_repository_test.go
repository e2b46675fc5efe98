package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bar-bike/models"
	"bar-bike/store"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newUserRepo(t *testing.T, backend store.Backend) *UserRepository {
	t.Helper()
	seq := 100
	table := store.NewTable[models.User](backend, "barbike_db_users_v1", zerolog.Nop())
	repo, err := NewUserRepository(context.Background(), table,
		WithClock(func() time.Time { return fixedNow }),
		WithUserIDs(func() string {
			seq++
			return fmt.Sprintf("u%d", seq)
		}),
	)
	require.NoError(t, err)
	return repo
}

func TestUserRepositoryFreshStoreHasSingleAdmin(t *testing.T) {
	repo := newUserRepo(t, store.NewMemoryBackend())

	users, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, models.DefaultAdmin(fixedNow), users[0])
	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
}

func TestUserRepositoryReseedsEmptyTable(t *testing.T) {
	ctx := context.Background()
	backend := store.NewMemoryBackend()
	require.NoError(t, backend.Set(ctx, "barbike_db_users_v1", []byte(`[]`)))

	repo := newUserRepo(t, backend)
	users, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "admin", users[0].Username)
}

func TestUserRepositoryAuthenticate(t *testing.T) {
	ctx := context.Background()
	repo := newUserRepo(t, store.NewMemoryBackend())

	user, ok, err := repo.Authenticate(ctx, "admin", "123")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1", user.ID)

	for _, tc := range []struct{ name, username, password string }{
		{"wrong password", "admin", "1234"},
		{"wrong username", "root", "123"},
		{"case sensitive username", "Admin", "123"},
		{"empty", "", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			user, ok, err := repo.Authenticate(ctx, tc.username, tc.password)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Nil(t, user)
		})
	}
}

func TestUserRepositoryAuthenticateEmptyTable(t *testing.T) {
	ctx := context.Background()
	backend := store.NewMemoryBackend()
	repo := newUserRepo(t, backend)
	require.NoError(t, backend.Set(ctx, "barbike_db_users_v1", []byte(`[]`)))

	_, ok, err := repo.Authenticate(ctx, "admin", "123")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	repo := newUserRepo(t, store.NewMemoryBackend())

	created, err := repo.Create(ctx, models.NewUser{Username: "dana", Password: "pw", FullName: "Dana", Role: models.RoleEditor})
	require.NoError(t, err)
	assert.Equal(t, "u101", created.ID)
	assert.Equal(t, fixedNow, created.CreatedAt)

	users, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, created, users[1], "new accounts are appended")

	user, ok, err := repo.Authenticate(ctx, "dana", "pw")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, created, *user)
}

func TestUserRepositoryCreateDuplicateLeavesTableUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := newUserRepo(t, store.NewMemoryBackend())

	before, err := repo.ListAll(ctx)
	require.NoError(t, err)

	_, err = repo.Create(ctx, models.NewUser{Username: "admin", Password: "x", FullName: "Y", Role: models.RoleEditor})
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	after, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	_, err = repo.Create(ctx, models.NewUser{Username: "ADMIN", Password: "x", FullName: "Y", Role: models.RoleEditor})
	assert.NoError(t, err, "username uniqueness is case-sensitive")
}

func TestUserRepositoryDeleteLastAccountGuard(t *testing.T) {
	ctx := context.Background()
	repo := newUserRepo(t, store.NewMemoryBackend())

	for _, id := range []string{"1", "someone-else", ""} {
		err := repo.Delete(ctx, id)
		assert.ErrorIs(t, err, ErrLastAccount, "target %q", id)
	}

	users, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := newUserRepo(t, store.NewMemoryBackend())

	editor, err := repo.Create(ctx, models.NewUser{Username: "editor", Password: "pw", FullName: "E", Role: models.RoleEditor})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "missing"))
	users, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	require.NoError(t, repo.Delete(ctx, "1"))
	users, err = repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, editor.ID, users[0].ID)

	assert.ErrorIs(t, repo.Delete(ctx, editor.ID), ErrLastAccount)
}
