package orders

import (
	"bubblebrew_server/config"
	"bubblebrew_server/database"
	"bubblebrew_server/services"
	"bubblebrew_server/structs"
	"bubblebrew_server/structs/tables"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"
)

func TestMain(m *testing.M) {
	config.InitializeLogger()
	os.Exit(m.Run())
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestFilterByTab(t *testing.T) {
	board := []tables.Order{
		{OrderID: "a", Status: tables.OrderStatusNew},
		{OrderID: "b", Status: tables.OrderStatusPreparing},
		{OrderID: "c", Status: tables.OrderStatusReady},
		{OrderID: "d", Status: tables.OrderStatusPaid},
		{OrderID: "e", Status: tables.OrderStatusCancelled},
	}

	active := filterByTab(board, "active")
	if len(active) != 2 || active[0].OrderID != "a" || active[1].OrderID != "b" {
		t.Errorf("active = %+v", active)
	}

	ready := filterByTab(board, "ready")
	if len(ready) != 1 || ready[0].OrderID != "c" {
		t.Errorf("ready = %+v", ready)
	}

	if all := filterByTab(board, "all"); len(all) != 5 {
		t.Errorf("all = %d orders, want 5", len(all))
	}
}

func TestListOrdersServesFromProjection(t *testing.T) {
	store := database.NewStore(":memory:")
	t.Cleanup(func() { store.Close() })

	logger := config.GetLogger()
	svc := services.NewOrderService(logger, store)
	board := services.NewOrderProjection(logger, store)
	if err := board.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	t.Cleanup(board.Unload)

	orm := NewOrderRoutesManager(logger, svc, board)
	ctx := context.Background()

	items := []structs.OrderItemInput{{ItemID: "mi-1", Name: "Thai Tea", Price: 4, Quantity: 1}}
	active, err := svc.CreateOrder(ctx, &structs.OrderRequest{CustomerName: "Anna", Items: items})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	waitFor(t, func() bool { return len(board.Items()) == 1 })

	for range 2 {
		if _, err := svc.Advance(ctx, active.OrderID); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}
	waitFor(t, func() bool {
		snapshot := board.Items()
		return len(snapshot) == 1 && snapshot[0].Status == tables.OrderStatusReady
	})

	rec := httptest.NewRecorder()
	orm.ListOrders(rec, httptest.NewRequest("GET", "/orders/?status=ready", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"Anna"`) {
		t.Errorf("ready tab body = %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	orm.ListOrders(rec, httptest.NewRequest("GET", "/orders/?status=active", nil))
	if !strings.Contains(rec.Body.String(), `"count":0`) {
		t.Errorf("active tab body = %s", rec.Body.String())
	}
}
