package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionStore_LoadEmpty(t *testing.T) {
	store := NewVersionStore()

	counters, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, counters)
}

func TestVersionStore_SaveThenLoad(t *testing.T) {
	ctx := context.Background()
	store := NewVersionStore()

	in := map[string]int{"Acme - PM Agreement - 2025-2026": 2}
	require.NoError(t, store.Save(ctx, in))

	// Mutating the caller's map must not leak into the store.
	in["Acme - PM Agreement - 2025-2026"] = 99

	out, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Acme - PM Agreement - 2025-2026": 2}, out)
	assert.Equal(t, 1, store.Saves())
}

func TestVersionStore_FailSaves(t *testing.T) {
	ctx := context.Background()
	store := NewVersionStore()
	boom := errors.New("disk full")

	store.FailSaves(boom)
	err := store.Save(ctx, map[string]int{"a": 1})
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, store.Saves())

	store.FailSaves(nil)
	require.NoError(t, store.Save(ctx, map[string]int{"a": 1}))
	assert.Equal(t, 1, store.Saves())
}
