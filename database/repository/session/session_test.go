package sessionRepo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cart struct {
	Items map[string]int `json:"items"`
}

func TestMemorySessionStore_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySessionStore(time.Minute)

	var got cart
	found, err := s.Load(ctx, CartPrefix+"jdoe", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Save(ctx, CartPrefix+"jdoe", cart{Items: map[string]int{"comb": 2}}))
	found, err = s.Load(ctx, CartPrefix+"jdoe", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 2, got.Items["comb"])

	require.NoError(t, s.Clear(ctx, CartPrefix+"jdoe"))
	found, err = s.Load(ctx, CartPrefix+"jdoe", &cart{})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemorySessionStore_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	s := NewMemorySessionStore(30 * time.Minute).WithClock(func() time.Time { return now })

	require.NoError(t, s.Save(ctx, WizardPrefix+"jdoe", map[string]string{"step": "day"}))

	now = now.Add(29 * time.Minute)
	found, err := s.Load(ctx, WizardPrefix+"jdoe", &map[string]string{})
	require.NoError(t, err)
	assert.True(t, found)

	now = now.Add(time.Minute)
	found, err = s.Load(ctx, WizardPrefix+"jdoe", &map[string]string{})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemorySessionStore_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySessionStore(time.Minute)
	require.NoError(t, s.Save(ctx, WizardPrefix+"a", "one"))
	require.NoError(t, s.Save(ctx, WizardPrefix+"b", "two"))

	var v string
	_, err := s.Load(ctx, WizardPrefix+"a", &v)
	require.NoError(t, err)
	assert.Equal(t, "one", v)
}
