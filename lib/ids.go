package lib

import (
	crand "crypto/rand"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// NewItemID returns the identifier for a new catalog row. It prefers a
// UUIDv4 drawn from the platform's cryptographic source; when that source is
// unavailable it degrades to a timestamp-plus-random scheme. The fallback is
// NOT cryptographically secure - it only has to avoid collisions between
// locally created rows, which the "fb-" prefix also makes easy to spot.
func NewItemID() string {
	id, err := uuid.NewRandomFromReader(crand.Reader)
	if err != nil {
		return fallbackItemID(time.Now())
	}
	return id.String()
}

func fallbackItemID(now time.Time) string {
	// Use a local rand.Source + rand.Rand for thread safety
	src := rand.NewSource(now.UnixNano())
	r := rand.New(src)

	return fmt.Sprintf("fb-%s-%s",
		strconv.FormatInt(now.UnixMilli(), 36),
		strconv.FormatInt(int64(r.Intn(1_000_000_000)), 36),
	)
}
