package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Price int64    `json:"price"`
	Tags  []string `json:"tags"`
	Flag  bool     `json:"flag"`
}

func TestTableReadAbsentKeyIsEmpty(t *testing.T) {
	table := NewTable[record](NewMemoryBackend(), "records_v1", zerolog.Nop())

	items, err := table.Read(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestTableRoundTrip(t *testing.T) {
	ctx := context.Background()
	table := NewTable[record](NewMemoryBackend(), "records_v1", zerolog.Nop())

	cases := map[string][]record{
		"empty": {},
		"one":   {{ID: "1", Name: "a", Price: 10, Tags: []string{}, Flag: true}},
		"many": {
			{ID: "2", Name: "b", Price: 0, Tags: []string{"x", "y"}},
			{ID: "1", Name: "a", Price: 4500, Tags: nil},
		},
	}

	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, table.Write(ctx, want))
			got, err := table.Read(ctx)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestTableMalformedPayloadIsLoggedAndEmpty(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	require.NoError(t, backend.Set(ctx, "records_v1", []byte("{not json")))

	var buf bytes.Buffer
	table := NewTable[record](backend, "records_v1", zerolog.New(&buf))

	items, err := table.Read(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Contains(t, buf.String(), "malformed")
	assert.Contains(t, buf.String(), "records_v1")
}

func TestTableInitializeIfAbsent(t *testing.T) {
	ctx := context.Background()
	table := NewTable[record](NewMemoryBackend(), "records_v1", zerolog.Nop())

	seed := []record{{ID: "1", Name: "seed", Tags: []string{}}}
	written, err := table.InitializeIfAbsent(ctx, seed)
	require.NoError(t, err)
	assert.True(t, written)

	require.NoError(t, table.Write(ctx, []record{}))

	written, err = table.InitializeIfAbsent(ctx, seed)
	require.NoError(t, err)
	assert.False(t, written, "an existing key, even an empty one, must not be reseeded")

	items, err := table.Read(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestTableUpdateSkipsWriteOnError(t *testing.T) {
	ctx := context.Background()
	table := NewTable[record](NewMemoryBackend(), "records_v1", zerolog.Nop())
	original := []record{{ID: "1", Name: "keep", Tags: []string{}}}
	require.NoError(t, table.Write(ctx, original))

	boom := errors.New("boom")
	err := table.Update(ctx, func(items []record) ([]record, error) {
		items[0].Name = "changed"
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)

	items, err := table.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, original, items)
}

type failingBackend struct {
	*MemoryBackend
}

func (failingBackend) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func TestTableReadSurfacesBackendErrors(t *testing.T) {
	table := NewTable[record](failingBackend{NewMemoryBackend()}, "records_v1", zerolog.Nop())

	_, err := table.Read(context.Background())
	assert.ErrorContains(t, err, "connection refused")
}

func TestTableConcurrentUpdatesDoNotLoseWrites(t *testing.T) {
	ctx := context.Background()
	table := NewTable[record](NewMemoryBackend(), "records_v1", zerolog.Nop())

	const writers = 50
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- table.Update(ctx, func(items []record) ([]record, error) {
				return append(items, record{ID: fmt.Sprintf("r%d", i), Tags: []string{}}), nil
			})
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	items, err := table.Read(ctx)
	require.NoError(t, err)
	assert.Len(t, items, writers)

	seen := map[string]bool{}
	for _, item := range items {
		seen[item.ID] = true
	}
	assert.Len(t, seen, writers)
}
