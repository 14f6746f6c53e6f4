package orders

import "github.com/ayoubrebai/autoparts-backend/pkg/enums"

// transitions maps each status to the statuses an order may move to next.
// The fulfillment chain moves forward one step at a time; CANCELLED is the
// side exit from every non-terminal state. DELIVERED and CANCELLED have no
// outgoing edges.
var transitions = map[enums.OrderStatus][]enums.OrderStatus{
	enums.OrderStatusPending:    {enums.OrderStatusConfirmed, enums.OrderStatusCancelled},
	enums.OrderStatusConfirmed:  {enums.OrderStatusProcessing, enums.OrderStatusCancelled},
	enums.OrderStatusProcessing: {enums.OrderStatusShipped, enums.OrderStatusCancelled},
	enums.OrderStatusShipped:    {enums.OrderStatusDelivered, enums.OrderStatusCancelled},
	enums.OrderStatusDelivered:  {},
	enums.OrderStatusCancelled:  {},
}

// CanTransition reports whether an order in the current status may move to
// the target status. Same-status is not a transition and returns false.
func CanTransition(current, target enums.OrderStatus) bool {
	for _, allowed := range transitions[current] {
		if allowed == target {
			return true
		}
	}
	return false
}

// NextStatuses returns the statuses reachable from the current one.
func NextStatuses(current enums.OrderStatus) []enums.OrderStatus {
	allowed := transitions[current]
	out := make([]enums.OrderStatus, len(allowed))
	copy(out, allowed)
	return out
}
