package service

import (
	"context"
)

// Event types published by the collection and claim flows.
const (
	EventTypePinCollected = "pin.collected"
	EventTypeClaimSettled = "claim.settled"
)

// CollectionEvent represents a collection or claim settlement event consumed
// by the notification feed and analytics collaborators.
type CollectionEvent struct {
	RequestID     string `json:"request_id,omitempty"` // For distributed tracing
	EventType     string `json:"event_type"`
	ConsumptionID string `json:"consumption_id"`
	PinID         string `json:"pin_id"`
	GroupID       string `json:"group_id"`
	UserID        string `json:"user_id"`
	AssetCode     string `json:"asset_code,omitempty"`
	TxID          string `json:"tx_id,omitempty"` // Settlement transaction id for claim.settled events.
	OccurredAt    string `json:"occurred_at"`     // RFC3339 timestamp.
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCollectionEvent publishes a collection/claim event for async processing
	PublishCollectionEvent(ctx context.Context, event *CollectionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
