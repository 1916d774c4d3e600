package database

import (
	"sync"
)

// hub fans committed-write signals out to subscribers. Each subscriber gets
// its own dispatch goroutine fed by a depth-one channel: a burst of commits
// coalesces into a single wake-up, and a slow callback never blocks the
// writer. Subscribers receive no diff - only a trigger to re-read.
type hub struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]*subscriber
}

type subscriber struct {
	collections map[string]struct{} // empty = every collection
	signal      chan struct{}
	done        chan struct{}
}

func newHub() *hub {
	return &hub{subs: make(map[int]*subscriber)}
}

func (h *hub) subscribe(collections []string, fn func()) (unsubscribe func()) {
	sub := &subscriber{
		collections: make(map[string]struct{}, len(collections)),
		signal:      make(chan struct{}, 1),
		done:        make(chan struct{}),
	}
	for _, c := range collections {
		sub.collections[c] = struct{}{}
	}

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = sub
	h.mu.Unlock()

	go sub.run(fn)

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(sub.done)
		})
	}
}

func (sub *subscriber) run(fn func()) {
	for {
		select {
		case <-sub.signal:
			fn()
		case <-sub.done:
			return
		}
	}
}

func (sub *subscriber) watches(collections []string) bool {
	if len(sub.collections) == 0 || len(collections) == 0 {
		return true
	}
	for _, c := range collections {
		if _, ok := sub.collections[c]; ok {
			return true
		}
	}
	return false
}

// notify wakes every subscriber watching any of the given collections. The
// send never blocks: a subscriber with a pending signal keeps exactly one.
func (h *hub) notify(collections ...string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subs {
		if !sub.watches(collections) {
			continue
		}
		select {
		case sub.signal <- struct{}{}:
		default:
		}
	}
}

func (h *hub) size() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
