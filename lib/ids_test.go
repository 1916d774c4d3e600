package lib

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewItemID(t *testing.T) {
	id := NewItemID()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("NewItemID() = %q, not a valid UUID: %v", id, err)
	}

	seen := make(map[string]struct{}, 100)
	for range 100 {
		next := NewItemID()
		if _, dup := seen[next]; dup {
			t.Fatalf("duplicate id %q", next)
		}
		seen[next] = struct{}{}
	}
}

func TestFallbackItemID(t *testing.T) {
	id := fallbackItemID(time.Date(2025, time.November, 23, 14, 5, 30, 0, time.UTC))

	if !strings.HasPrefix(id, "fb-") {
		t.Errorf("fallback id %q missing fb- prefix", id)
	}
	if parts := strings.Split(id, "-"); len(parts) != 3 {
		t.Errorf("fallback id %q has %d segments, want 3", id, len(parts))
	}
}
