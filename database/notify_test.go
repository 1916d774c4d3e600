package database

import (
	"testing"
	"time"
)

func recvSignal(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a notification")
	}
}

func expectQuiet(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
		t.Fatal("unexpected notification")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHubNotifyFilters(t *testing.T) {
	h := newHub()
	calls := make(chan struct{}, 10)
	unsub := h.subscribe([]string{CollectionOrders}, func() {
		calls <- struct{}{}
	})
	defer unsub()

	h.notify(CollectionMenuItems)
	expectQuiet(t, calls)

	h.notify(CollectionOrders)
	recvSignal(t, calls)

	// A write naming no collections wakes everyone.
	h.notify()
	recvSignal(t, calls)
}

func TestHubSubscribeAllCollections(t *testing.T) {
	h := newHub()
	calls := make(chan struct{}, 10)
	unsub := h.subscribe(nil, func() {
		calls <- struct{}{}
	})
	defer unsub()

	h.notify(CollectionMenuItems)
	recvSignal(t, calls)

	h.notify(CollectionOrders)
	recvSignal(t, calls)
}

func TestHubCoalescesBursts(t *testing.T) {
	h := newHub()
	calls := make(chan struct{})
	gate := make(chan struct{})
	unsub := h.subscribe(nil, func() {
		calls <- struct{}{}
		<-gate
	})
	defer unsub()

	// First notify starts a callback; it parks on the gate.
	h.notify()
	recvSignal(t, calls)

	// Three more commits while the callback is busy collapse into one
	// pending wake-up.
	h.notify()
	h.notify()
	h.notify()

	gate <- struct{}{}
	recvSignal(t, calls)
	gate <- struct{}{}

	expectQuiet(t, calls)
}

func TestHubUnsubscribe(t *testing.T) {
	h := newHub()
	calls := make(chan struct{}, 10)
	unsub := h.subscribe(nil, func() {
		calls <- struct{}{}
	})

	if h.size() != 1 {
		t.Fatalf("size = %d, want 1", h.size())
	}

	unsub()
	unsub() // second call is a no-op

	if h.size() != 0 {
		t.Fatalf("size after unsubscribe = %d, want 0", h.size())
	}

	h.notify()
	expectQuiet(t, calls)
}
