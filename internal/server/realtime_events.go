package server

import (
	"context"
	"encoding/json"
	"log"

	"foodbridge/internal/notifications"
	"foodbridge/internal/observability"
)

// realtimePublisher delivers service events to connected users. Events go
// through Redis pub/sub when available so every instance's hub sees them;
// the hub alone covers single-instance deployments and tests.
type realtimePublisher struct {
	hub      *notifications.Hub
	notifier *notifications.Notifier
}

func newRealtimePublisher(hub *notifications.Hub, notifier *notifications.Notifier) *realtimePublisher {
	return &realtimePublisher{hub: hub, notifier: notifier}
}

// PublishToUser implements service.EventPublisher.
func (p *realtimePublisher) PublishToUser(ctx context.Context, userID uint, eventType string, payload interface{}) {
	event := map[string]interface{}{
		"type":    eventType,
		"payload": payload,
	}
	eventJSON, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal %s event: %v", eventType, err)
		return
	}
	message := string(eventJSON)

	observability.EventsPublished.WithLabelValues(eventType).Inc()

	if p.notifier != nil {
		// The hub is subscribed to the same channels, so this reaches local
		// connections too.
		if err := p.notifier.PublishUser(ctx, userID, message); err != nil {
			log.Printf("failed to publish %s event to user %d: %v", eventType, userID, err)
		}
		return
	}

	if p.hub != nil {
		p.hub.Broadcast(userID, message)
	}
}
