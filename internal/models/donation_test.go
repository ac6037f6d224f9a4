package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDonationStatus(t *testing.T) {
	for _, valid := range []string{"available", "claimed", "reserved", "completed", "cancelled"} {
		status, ok := ParseDonationStatus(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, DonationStatus(valid), status)
	}

	for _, invalid := range []string{"", "Available", "pending", "deleted", "expired"} {
		_, ok := ParseDonationStatus(invalid)
		assert.False(t, ok, invalid)
	}
}

func TestDonationStatusTransitions(t *testing.T) {
	allowed := map[DonationStatus][]DonationStatus{
		DonationStatusAvailable: {DonationStatusClaimed, DonationStatusReserved, DonationStatusCancelled},
		DonationStatusClaimed:   {DonationStatusCompleted, DonationStatusCancelled, DonationStatusAvailable},
		DonationStatusReserved:  {DonationStatusCompleted, DonationStatusCancelled, DonationStatusAvailable},
		DonationStatusCancelled: {DonationStatusAvailable},
		DonationStatusCompleted: {},
	}

	all := []DonationStatus{
		DonationStatusAvailable, DonationStatusClaimed, DonationStatusReserved,
		DonationStatusCompleted, DonationStatusCancelled,
	}

	for from, targets := range allowed {
		permitted := make(map[DonationStatus]bool)
		for _, to := range targets {
			permitted[to] = true
		}
		for _, to := range all {
			assert.Equal(t, permitted[to], from.CanTransitionTo(to),
				"%s -> %s", from, to)
		}
	}
}

func TestDonationStatusCompletedIsTerminal(t *testing.T) {
	for _, to := range []DonationStatus{
		DonationStatusAvailable, DonationStatusClaimed, DonationStatusReserved, DonationStatusCancelled,
	} {
		assert.False(t, DonationStatusCompleted.CanTransitionTo(to))
	}
}
