package services

import (
	"bubblebrew_server/database"
	"bubblebrew_server/structs"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/redis/go-redis/v9"
)

// SyncService republishes store change notifications on a Redis channel so
// secondary displays (kitchen screens, a second register) can mirror state
// without talking to this process directly. The embedded store stays the
// source of truth; this is fan-out only, and the whole service is off unless
// SYNC_ENABLED is set.
type SyncService struct {
	logger  *gecho.Logger
	cfg     *structs.SyncConfig
	store   *database.Store
	client  *redis.Client
	unsub   func()
	channel string
}

type changeEvent struct {
	Collection string    `json:"collection"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewSyncService(logger *gecho.Logger, cfg *structs.SyncConfig, store *database.Store) *SyncService {
	return &SyncService{
		logger:  logger,
		cfg:     cfg,
		store:   store,
		channel: cfg.Channel,
	}
}

// Start connects to Redis and subscribes to the store's change hub. No-op
// when sync is disabled.
func (ss *SyncService) Start(ctx context.Context) error {
	if !ss.cfg.Enabled {
		return nil
	}

	ss.client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", ss.cfg.Host, ss.cfg.Port),
		Password: ss.cfg.Password,
		DB:       ss.cfg.DB,

		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := ss.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to sync redis: %w", err)
	}

	ss.unsub = ss.store.Subscribe([]string{database.CollectionMenuItems}, func() {
		ss.publish(database.CollectionMenuItems)
	})
	prevUnsub := ss.unsub
	orderUnsub := ss.store.Subscribe([]string{database.CollectionOrders}, func() {
		ss.publish(database.CollectionOrders)
	})
	ss.unsub = func() {
		prevUnsub()
		orderUnsub()
	}

	ss.logger.Info("Change-event sync started", gecho.Field("channel", ss.channel))
	return nil
}

func (ss *SyncService) publish(collection string) {
	payload, err := json.Marshal(changeEvent{
		Collection: collection,
		OccurredAt: time.Now(),
	})
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := ss.client.Publish(ctx, ss.channel, payload).Err(); err != nil {
		// Fan-out is best effort; local consumers already got the change.
		ss.logger.Warn("Failed to publish change event",
			gecho.Field("collection", collection),
			gecho.Field("error", err),
		)
	}
}

// Stop releases the hub subscription and the Redis connection.
func (ss *SyncService) Stop() error {
	if ss.unsub != nil {
		ss.unsub()
		ss.unsub = nil
	}
	if ss.client != nil {
		return ss.client.Close()
	}
	return nil
}
