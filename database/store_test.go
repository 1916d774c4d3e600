package database

import (
	"bubblebrew_server/config"
	"bubblebrew_server/structs/tables"
	"context"
	"os"
	"testing"
	"time"

	"github.com/uptrace/bun"
)

func TestMain(m *testing.M) {
	config.InitializeLogger()
	os.Exit(m.Run())
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(":memory:")
	t.Cleanup(func() { store.Close() })
	return store
}

func insertMenuItem(t *testing.T, h *Handle, item *tables.MenuItem) {
	t.Helper()
	err := h.Write(context.Background(), func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(item).Exec(ctx)
		return err
	}, CollectionMenuItems)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
}

func TestOpenCloseRefCounting(t *testing.T) {
	store := newTestStore(t)

	h1, err := store.Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	h2, err := store.Open()
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}

	if refs := store.Stats()["open_handles"]; refs != 2 {
		t.Errorf("open_handles = %v, want 2", refs)
	}

	// Closing a handle twice only releases it once.
	h1.Close()
	h1.Close()
	if refs := store.Stats()["open_handles"]; refs != 1 {
		t.Errorf("open_handles after double close = %v, want 1", refs)
	}

	// The remaining handle still reaches the database.
	if err := store.Health(); err != nil {
		t.Errorf("Health: %v", err)
	}
	h2.Close()
}

func TestMigrateStampsSchemaVersion(t *testing.T) {
	store := newTestStore(t)

	h, err := store.Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer h.Close()

	db, err := h.db()
	if err != nil {
		t.Fatalf("db: %v", err)
	}

	var version int
	if err := db.QueryRowContext(context.Background(), "PRAGMA user_version").Scan(&version); err != nil {
		t.Fatalf("read user_version: %v", err)
	}
	if version != SchemaVersion {
		t.Errorf("user_version = %d, want %d", version, SchemaVersion)
	}
}

func TestWriteAndQueryRoundTrip(t *testing.T) {
	store := newTestStore(t)

	h, err := store.Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer h.Close()

	label := "L"
	insertMenuItem(t, h, &tables.MenuItem{
		ID:        "item-1",
		Name:      "Classic Milk Tea",
		SizeLabel: &label,
		Price:     4.5,
		CreatedAt: time.Now(),
	})

	ctx := context.Background()

	all, err := NewQuery[tables.MenuItem](h).All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 1 || all[0].Name != "Classic Milk Tea" {
		t.Errorf("All = %+v", all)
	}

	found, err := FindByPK[tables.MenuItem](h, ctx, "id", "item-1")
	if err != nil {
		t.Fatalf("FindByPK: %v", err)
	}
	if found == nil || found.SizeLabel == nil || *found.SizeLabel != "L" {
		t.Errorf("FindByPK = %+v", found)
	}

	count, err := NewQuery[tables.MenuItem](h).Where("name", "Classic Milk Tea").Count(ctx)
	if err != nil || count != 1 {
		t.Errorf("Count = (%d, %v), want (1, nil)", count, err)
	}

	exists, err := NewQuery[tables.MenuItem](h).Where("name", "Oolong").Exists(ctx)
	if err != nil || exists {
		t.Errorf("Exists = (%v, %v), want (false, nil)", exists, err)
	}
}

func TestFirstReturnsNilWhenNothingMatches(t *testing.T) {
	store := newTestStore(t)

	h, err := store.Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer h.Close()

	item, err := NewQuery[tables.MenuItem](h).Where("id", "missing").First(context.Background())
	if err != nil {
		t.Fatalf("First: %v", err)
	}
	if item != nil {
		t.Errorf("First = %+v, want nil", item)
	}
}

func TestWriteRollsBackAsAWhole(t *testing.T) {
	store := newTestStore(t)

	h, err := store.Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer h.Close()

	ctx := context.Background()
	insertMenuItem(t, h, &tables.MenuItem{ID: "dup", Name: "Thai Tea", Price: 4, CreatedAt: time.Now()})

	// Second insert in the transaction violates the primary key; the first
	// insert must not survive on its own.
	err = h.Write(ctx, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(&tables.MenuItem{ID: "fresh", Name: "Oolong", Price: 4, CreatedAt: time.Now()}).Exec(ctx); err != nil {
			return err
		}
		_, err := tx.NewInsert().Model(&tables.MenuItem{ID: "dup", Name: "Thai Tea", Price: 4, CreatedAt: time.Now()}).Exec(ctx)
		return err
	}, CollectionMenuItems)
	if err == nil {
		t.Fatal("expected constraint failure")
	}

	count, err := NewQuery[tables.MenuItem](h).Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Errorf("count after rollback = %d, want 1", count)
	}
}

func TestWriteNotifiesSubscribers(t *testing.T) {
	store := newTestStore(t)

	h, err := store.Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer h.Close()

	calls := make(chan struct{}, 10)
	unsub := store.Subscribe([]string{CollectionMenuItems}, func() {
		calls <- struct{}{}
	})
	defer unsub()

	insertMenuItem(t, h, &tables.MenuItem{ID: "n1", Name: "Jasmine", Price: 3.5, CreatedAt: time.Now()})
	recvSignal(t, calls)

	// A write against another collection does not wake this subscriber.
	order := &tables.Order{OrderID: "0101OI010125", Status: tables.OrderStatusNew, Items: tables.OrderItems{}, CreatedAt: time.Now()}
	err = h.Write(context.Background(), func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(order).Exec(ctx)
		return err
	}, CollectionOrders)
	if err != nil {
		t.Fatalf("order insert: %v", err)
	}
	expectQuiet(t, calls)
}

func TestLiveQueryReadAndSubscribe(t *testing.T) {
	store := newTestStore(t)

	h, err := store.Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer h.Close()

	live := Live(h, CollectionMenuItems, func(q *Query[tables.MenuItem]) *Query[tables.MenuItem] {
		return q.OrderBy("created_at", DESC)
	})

	items, err := live.Read(context.Background())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("fresh store has %d items", len(items))
	}

	calls := make(chan struct{}, 10)
	unsub := live.Subscribe(func() { calls <- struct{}{} })
	defer unsub()

	insertMenuItem(t, h, &tables.MenuItem{ID: "lq1", Name: "Genmaicha", Price: 3, CreatedAt: time.Now()})
	recvSignal(t, calls)

	items, err = live.Read(context.Background())
	if err != nil {
		t.Fatalf("Read after write: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("items after write = %d, want 1", len(items))
	}
}
