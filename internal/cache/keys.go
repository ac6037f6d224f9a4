package cache

import (
	"context"
	"strconv"
	"time"
)

// DonationTTL bounds how stale a cached donation detail can get. Writes also
// invalidate eagerly, the TTL is the backstop.
const DonationTTL = 5 * time.Minute

// DonationKey derives the cache key for a donation detail.
func DonationKey(id uint) string {
	return "donation:" + strconv.FormatUint(uint64(id), 10)
}

// GetDonation returns the cached JSON for a donation, or "" on miss.
func GetDonation(ctx context.Context, id uint) string {
	if client == nil {
		return ""
	}
	val, err := client.Get(ctx, DonationKey(id)).Result()
	if err != nil {
		return ""
	}
	return val
}

// SetDonation caches the JSON for a donation detail.
func SetDonation(ctx context.Context, id uint, payload string) {
	if client == nil {
		return
	}
	client.Set(ctx, DonationKey(id), payload, DonationTTL)
}

// InvalidateDonation drops the cached detail for a donation.
func InvalidateDonation(ctx context.Context, id uint) {
	if client == nil {
		return
	}
	client.Del(ctx, DonationKey(id))
}
