package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DonationsCreated counts donation listings created.
	DonationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodbridge_donations_created_total",
		Help: "Total number of donation listings created",
	})

	// DonationsClaimed counts successful direct claims.
	DonationsClaimed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodbridge_donations_claimed_total",
		Help: "Total number of donations claimed by recipients",
	})

	// DonationStatusChanges counts status transitions by target status.
	DonationStatusChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "foodbridge_donation_status_changes_total",
		Help: "Total number of donation status transitions by target status",
	}, []string{"status"})

	// ClaimConflicts counts claims lost to a concurrent claimer.
	ClaimConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodbridge_claim_conflicts_total",
		Help: "Total number of claim attempts that lost a race or hit a non-available donation",
	})

	// RequestsCreated counts pickup requests submitted.
	RequestsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodbridge_pickup_requests_created_total",
		Help: "Total number of pickup requests submitted",
	})

	// RequestsResolved counts pickup requests resolved by outcome.
	RequestsResolved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "foodbridge_pickup_requests_resolved_total",
		Help: "Total number of pickup requests resolved by outcome",
	}, []string{"outcome"})

	// WebSocketDrops counts messages dropped on slow or closed connections.
	WebSocketDrops = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "foodbridge_websocket_drops_total",
		Help: "Total number of WebSocket messages dropped by reason",
	}, []string{"reason"})

	// EventsPublished counts realtime events pushed to connected clients.
	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "foodbridge_events_published_total",
		Help: "Total number of realtime events published by type",
	}, []string{"event_type"})
)
