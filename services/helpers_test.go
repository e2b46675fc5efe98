package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"bar-bike/models"
	"bar-bike/repositories"
	"bar-bike/store"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestProductRepo(t *testing.T) *repositories.ProductRepository {
	t.Helper()
	table := store.NewTable[models.Product](store.NewMemoryBackend(), "barbike_db_products_v1", zerolog.Nop())
	repo, err := repositories.NewProductRepository(context.Background(), table, models.SeedProducts())
	require.NoError(t, err)
	return repo
}

func newTestUserRepo(t *testing.T) *repositories.UserRepository {
	t.Helper()
	seq := 100
	table := store.NewTable[models.User](store.NewMemoryBackend(), "barbike_db_users_v1", zerolog.Nop())
	repo, err := repositories.NewUserRepository(context.Background(), table,
		repositories.WithClock(func() time.Time { return testNow }),
		repositories.WithUserIDs(func() string {
			seq++
			return fmt.Sprintf("u%d", seq)
		}),
	)
	require.NoError(t, err)
	return repo
}

func sequentialIDs(start int) func() string {
	n := start
	return func() string {
		n++
		return fmt.Sprintf("%d", n)
	}
}

func productIDs(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}
