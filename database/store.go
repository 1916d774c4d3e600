package database

import (
	"bubblebrew_server/config"
	"bubblebrew_server/structs/tables"
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// Collections known to the store. Write transactions name the collections
// they touch so subscribers can be woken selectively.
const (
	CollectionMenuItems = "menu_items"
	CollectionOrders    = "orders"
)

// SchemaVersion is the current persisted schema: menu_items plus orders with
// embedded items. Stored in PRAGMA user_version.
const SchemaVersion = 2

// Store owns one embedded SQLite database and its change-notification hub.
// Consumers never hold the bun.DB directly: they Open() a Handle, run reads
// and transactional writes through it, and Close() it when done. Closing one
// handle never disturbs queries or subscriptions owned by another.
type Store struct {
	mu     sync.Mutex
	path   string
	db     *bun.DB
	refs   int
	hub    *hub
	logger *gecho.Logger
}

var instance *Store

// NewStore creates a store for the given SQLite path (":memory:" for tests).
// The database file is not touched until the first Open.
func NewStore(path string) *Store {
	return &Store{
		path:   path,
		hub:    newHub(),
		logger: config.GetLogger(),
	}
}

// Initialize sets up the global store instance using centralized configuration
func Initialize() error {
	store := NewStore(config.GetConfig().Store.Path)

	// Fail fast on an unopenable or unmigratable database file.
	handle, err := store.Open()
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	if err := handle.Close(); err != nil {
		return err
	}

	instance = store
	return nil
}

// GetInstance returns the global store instance
// This is the primary way to access the store throughout the application
func GetInstance() *Store {
	if instance == nil {
		log.Fatal("Store instance is not initialized. Call Initialize() first.")
	}
	return instance
}

// CloseInstance closes the global store instance
func CloseInstance() error {
	if instance != nil {
		return instance.Close()
	}
	return nil
}

// Open obtains a handle to the store. The first open connects and migrates;
// later opens share the same underlying database, so overlapping open/close
// calls from independent consumers compose safely.
func (s *Store) Open() (*Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		db, err := s.connect()
		if err != nil {
			return nil, err
		}
		s.db = db
	}

	s.refs++
	return &Handle{store: s}, nil
}

func (s *Store) connect() (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %q: %w", s.path, err)
	}

	// SQLite is single-writer; one connection avoids SQLITE_BUSY churn and
	// keeps ":memory:" stores on a single in-process database.
	sqldb.SetMaxOpenConns(1)
	sqldb.SetConnMaxIdleTime(0)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping store: %w", err)
	}
	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate store: %w", err)
	}

	s.logger.Info("Opened embedded store", gecho.Field("path", s.path), gecho.Field("schema_version", SchemaVersion))
	return db, nil
}

// Close shuts the underlying database down regardless of outstanding handles.
// Meant for process teardown and test cleanup; leaked handles are logged.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.refs > 0 {
		s.logger.Warn("Closing store with open handles", gecho.Field("open_handles", s.refs))
	}
	s.refs = 0

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Subscribe registers fn to run after every committed write transaction that
// names one of the given collections (no collections = every write). The
// returned unsubscribe is safe to call more than once; only the first call
// releases the subscription. Subscriptions belong to the store, not to any
// handle, so they survive unrelated handle closes.
func (s *Store) Subscribe(collections []string, fn func()) (unsubscribe func()) {
	return s.hub.subscribe(collections, fn)
}

// Health checks the store connection health
func (s *Store) Health() error {
	s.mu.Lock()
	db := s.db
	s.mu.Unlock()

	if db == nil {
		return fmt.Errorf("store is not open")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return db.PingContext(ctx)
}

// Stats returns handle and subscriber counts for the health endpoint.
func (s *Store) Stats() map[string]any {
	s.mu.Lock()
	open := s.db != nil
	refs := s.refs
	s.mu.Unlock()

	return map[string]any{
		"open":         open,
		"open_handles": refs,
		"subscribers":  s.hub.size(),
		"path":         s.path,
	}
}

// migrate brings the database to the current schema version. Nothing to do
// for stores already at or beyond it; version 1 carried the same tables, so
// the 1 -> 2 step is a plain stamp.
func migrate(ctx context.Context, db *bun.DB) error {
	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version >= SchemaVersion {
		return nil
	}

	if _, err := db.NewCreateTable().
		Model((*tables.MenuItem)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to create menu_items: %w", err)
	}

	if _, err := db.NewCreateTable().
		Model((*tables.Order)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to create orders: %w", err)
	}

	if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", SchemaVersion)); err != nil {
		return fmt.Errorf("failed to stamp schema version: %w", err)
	}
	return nil
}
