package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoubrebai/autoparts-backend/pkg/enums"
)

func TestCanTransitionForwardChain(t *testing.T) {
	assert.True(t, CanTransition(enums.OrderStatusPending, enums.OrderStatusConfirmed))
	assert.True(t, CanTransition(enums.OrderStatusConfirmed, enums.OrderStatusProcessing))
	assert.True(t, CanTransition(enums.OrderStatusProcessing, enums.OrderStatusShipped))
	assert.True(t, CanTransition(enums.OrderStatusShipped, enums.OrderStatusDelivered))
}

func TestCanTransitionRejectsSkipsAndReversals(t *testing.T) {
	assert.False(t, CanTransition(enums.OrderStatusPending, enums.OrderStatusShipped))
	assert.False(t, CanTransition(enums.OrderStatusPending, enums.OrderStatusDelivered))
	assert.False(t, CanTransition(enums.OrderStatusConfirmed, enums.OrderStatusPending))
	assert.False(t, CanTransition(enums.OrderStatusShipped, enums.OrderStatusProcessing))
}

func TestCancelIsSideExitFromNonTerminalStates(t *testing.T) {
	for _, status := range []enums.OrderStatus{
		enums.OrderStatusPending,
		enums.OrderStatusConfirmed,
		enums.OrderStatusProcessing,
		enums.OrderStatusShipped,
	} {
		assert.True(t, CanTransition(status, enums.OrderStatusCancelled), "cancel from %s", status)
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	for _, target := range enums.OrderStatuses() {
		assert.False(t, CanTransition(enums.OrderStatusDelivered, target), "delivered to %s", target)
		assert.False(t, CanTransition(enums.OrderStatusCancelled, target), "cancelled to %s", target)
	}
}

func TestNextStatuses(t *testing.T) {
	assert.ElementsMatch(t,
		[]enums.OrderStatus{enums.OrderStatusConfirmed, enums.OrderStatusCancelled},
		NextStatuses(enums.OrderStatusPending))
	assert.Empty(t, NextStatuses(enums.OrderStatusDelivered))
}
