// Package service contains the business logic for donations and pickup requests.
package service

import "context"

// Realtime event types pushed to connected users.
const (
	EventDonationClaimed       = "donation_claimed"
	EventDonationStatusChanged = "donation_status_changed"
	EventDonationDeleted       = "donation_deleted"
	EventRequestReceived       = "request_received"
	EventRequestApproved       = "request_approved"
	EventRequestRejected       = "request_rejected"
)

// EventPublisher delivers realtime events to users. The server wires an
// implementation backed by the WebSocket hub and Redis pub/sub; tests inject
// a recording stub.
type EventPublisher interface {
	PublishToUser(ctx context.Context, userID uint, eventType string, payload interface{})
}

// NopPublisher discards all events. Useful for tools (seeder, scripts) that
// drive services without a realtime layer.
type NopPublisher struct{}

// PublishToUser implements EventPublisher.
func (NopPublisher) PublishToUser(context.Context, uint, string, interface{}) {}
