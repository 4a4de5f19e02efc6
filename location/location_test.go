package location

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Aswin-004/restaurant-ordering-platform/pricing"
	"github.com/Aswin-004/restaurant-ordering-platform/session"
)

func newTestStore() *Store {
	return NewStore(session.NewMemoryStore(), zap.NewNop())
}

func TestSetPickup(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	assert.False(t, s.IsSet(ctx, "sess1"))
	require.NoError(t, s.Set(ctx, "sess1", pricing.ModePickup, ""))

	sel, ok := s.Get(ctx, "sess1")
	require.True(t, ok)
	assert.Equal(t, pricing.ModePickup, sel.DeliveryType)
	assert.Empty(t, sel.SelectedArea)
}

func TestSetDeliveryRequiresServiceableArea(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	err := s.Set(ctx, "sess1", pricing.ModeDelivery, "Chennai Central")
	assert.ErrorIs(t, err, ErrNotServiceable)
	assert.False(t, s.IsSet(ctx, "sess1"), "rejected selection must leave no state")

	require.NoError(t, s.Set(ctx, "sess1", pricing.ModeDelivery, "SRM Nagar"))
	sel, ok := s.Get(ctx, "sess1")
	require.True(t, ok)
	assert.Equal(t, "SRM Nagar", sel.SelectedArea)
}

func TestSetInvalidMode(t *testing.T) {
	s := newTestStore()
	err := s.Set(context.Background(), "sess1", "dine_in", "")
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestClear(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "sess1", pricing.ModePickup, ""))
	s.Clear(ctx, "sess1")
	assert.False(t, s.IsSet(ctx, "sess1"))
}

func TestCorruptDocumentReadsAsUnset(t *testing.T) {
	mem := session.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, mem.Set(ctx, "location:sess1", []byte("oops")))

	s := NewStore(mem, zap.NewNop())
	assert.False(t, s.IsSet(ctx, "sess1"))
}
