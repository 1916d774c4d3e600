package events

import (
	"fmt"
	"net/http"
	"time"

	"bubblebrew_server/database"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// keepAliveInterval is how often an idle stream gets a comment line so
// proxies don't cut the connection.
const keepAliveInterval = 25 * time.Second

type EventRoutesManager struct {
	logger *gecho.Logger
	store  *database.Store
}

func NewEventRoutesManager(logger *gecho.Logger, store *database.Store) *EventRoutesManager {
	return &EventRoutesManager{
		logger: logger,
		store:  store,
	}
}

func (erm *EventRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/events", erm.StreamChanges)
}

// StreamChanges is a server-sent-events feed that emits a "change" event
// whenever the menu or order collections commit a write. The event carries no
// payload; clients re-read through their live queries on receipt.
func (erm *EventRoutesManager) StreamChanges(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		gecho.InternalServerError(w,
			gecho.WithMessage("error.events.streamingUnsupported"),
			gecho.Send(),
		)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	// Coalescing channel: a burst of commits between flushes collapses into
	// a single event, same as the in-process subscribers.
	changes := make(chan struct{}, 1)
	unsubscribe := erm.store.Subscribe([]string{database.CollectionMenuItems, database.CollectionOrders}, func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	fmt.Fprintf(w, "event: connected\ndata: {}\n\n")
	flusher.Flush()

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-changes:
			fmt.Fprintf(w, "event: change\ndata: {}\n\n")
			flusher.Flush()
		case <-keepAlive.C:
			fmt.Fprint(w, ": keep-alive\n\n")
			flusher.Flush()
		}
	}
}
