package event

import "time"

// Topic is a broadcast channel. Each topic maps to one Postgres NOTIFY
// channel and one websocket subscription scope.
type Topic string

const (
	// TopicDistribution carries agent-facing offers and offer outcomes.
	TopicDistribution Topic = "distribution"
	// TopicAdmin is the administrative monitoring stream.
	TopicAdmin Topic = "admin"
	// TopicOrders carries requester-facing order status changes.
	TopicOrders Topic = "orders"
)

// Event names. Payloads carry identifiers plus enough display fields for a
// client to render without a follow-up fetch.
const (
	NameNewOrder           = "new-order"
	NameOrderOffer         = "order-offer"
	NameOrderAccepted      = "order-accepted"
	NameOrderRejected      = "order-rejected"
	NameOrderTimeout       = "order-timeout"
	NameOrderAssigned      = "order-assigned"
	NameOrderCompleted     = "order-completed"
	NameOrderStatusChanged = "order-status-changed"
	NameAgentStatusChanged = "agent-status-changed"
	NameDistributionUpdate = "distribution-update"
)

type Event struct {
	Topic     Topic          `json:"topic"`
	Name      string         `json:"name"`
	Payload   map[string]any `json:"payload"`
	Timestamp time.Time      `json:"timestamp"`
}

func New(topic Topic, name string, payload map[string]any) Event {
	return Event{
		Topic:     topic,
		Name:      name,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}
