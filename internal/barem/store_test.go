package barem

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	got, err := store.Get(ctx, "Data Analyst")
	require.NoError(t, err)
	assert.Nil(t, got, "missing title returns nil, not an error")

	c := AutoDistribute("Data Analyst", map[string][]string{"Technical": {"SQL"}})
	require.NoError(t, store.Put(ctx, c))

	got, err = store.Get(ctx, "Data Analyst")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, c.Weights, got.Weights)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestMemoryStoreLastWriteWins(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first := &Criteria{JobTitle: "HR Manager", Weights: map[string]int{"a": 100}}
	second := &Criteria{JobTitle: "HR Manager", Weights: map[string]int{"a": 50, "b": 50}}
	require.NoError(t, store.Put(ctx, first))
	require.NoError(t, store.Put(ctx, second))

	got, err := store.Get(ctx, "HR Manager")
	require.NoError(t, err)
	assert.Equal(t, second.Weights, got.Weights)

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Put(ctx, &Criteria{JobTitle: "X", Weights: map[string]int{"a": 100}}))
	require.NoError(t, store.Delete(ctx, "X"))
	require.NoError(t, store.Delete(ctx, "X"), "deleting a missing title is a no-op")

	got, err := store.Get(ctx, "X")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreListSorted(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	for _, title := range []string{"Zeta", "Alpha", "Mid"} {
		require.NoError(t, store.Put(ctx, &Criteria{JobTitle: title, Weights: map[string]int{"a": 100}}))
	}
	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Alpha", all[0].JobTitle)
	assert.Equal(t, "Zeta", all[2].JobTitle)
}
