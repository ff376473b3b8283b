package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test: 通常の進行（PENDING→…→DELIVERED）
func TestOrderStatusHappyPath(t *testing.T) {
	assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusConfirmed))
	assert.True(t, OrderStatusConfirmed.CanTransitionTo(OrderStatusPreparing))
	assert.True(t, OrderStatusPreparing.CanTransitionTo(OrderStatusReady))
	assert.True(t, OrderStatusReady.CanTransitionTo(OrderStatusDelivered))
}

// Test: キャンセルは終端以外のどこからでも
func TestOrderStatusCancelFromAnywhere(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing, OrderStatusReady,
	} {
		assert.True(t, s.CanTransitionTo(OrderStatusCancelled), "from %s", s)
	}
}

// Test: 終端からは出られない
func TestOrderStatusTerminal(t *testing.T) {
	for _, next := range []OrderStatus{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled,
	} {
		assert.False(t, OrderStatusDelivered.CanTransitionTo(next), "delivered -> %s", next)
		assert.False(t, OrderStatusCancelled.CanTransitionTo(next), "cancelled -> %s", next)
	}

	assert.True(t, OrderStatusDelivered.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatusPending.IsTerminal())
}

// Test: 飛び級は不可（PENDINGからPREPARINGなど）
func TestOrderStatusNoSkipping(t *testing.T) {
	assert.False(t, OrderStatusPending.CanTransitionTo(OrderStatusPreparing))
	assert.False(t, OrderStatusPending.CanTransitionTo(OrderStatusDelivered))
	assert.False(t, OrderStatusConfirmed.CanTransitionTo(OrderStatusDelivered))
	//逆戻りも不可
	assert.False(t, OrderStatusPreparing.CanTransitionTo(OrderStatusConfirmed))
}

func TestParseOrderStatus(t *testing.T) {
	s, ok := ParseOrderStatus("CONFIRMED")
	assert.True(t, ok)
	assert.Equal(t, OrderStatusConfirmed, s)

	_, ok = ParseOrderStatus("PAID")
	assert.False(t, ok)
}

// Test: ティア別単価の解決
func TestProductPriceForTier(t *testing.T) {
	p := Product{
		PriceStandardCents: 3000,
		PriceDeluxeCents:   4500,
		PricePremiumCents:  6000,
	}

	v, ok := p.PriceForTier(TierStandard)
	assert.True(t, ok)
	assert.Equal(t, int64(3000), v)

	//未指定はstandard
	v, ok = p.PriceForTier("")
	assert.True(t, ok)
	assert.Equal(t, int64(3000), v)

	v, ok = p.PriceForTier(TierPremium)
	assert.True(t, ok)
	assert.Equal(t, int64(6000), v)

	_, ok = p.PriceForTier("gigantic")
	assert.False(t, ok)
}
