package tables

import "testing"

func TestOrderStatusNext(t *testing.T) {
	tests := []struct {
		from OrderStatus
		want OrderStatus
		ok   bool
	}{
		{OrderStatusNew, OrderStatusPreparing, true},
		{OrderStatusPreparing, OrderStatusReady, true},
		{OrderStatusReady, OrderStatusPaid, true},
		{OrderStatusPaid, "", false},
		{OrderStatusCancelled, "", false},
		{OrderStatus("bogus"), "", false},
	}

	for _, tt := range tests {
		got, ok := tt.from.Next()
		if ok != tt.ok || got != tt.want {
			t.Errorf("%s.Next() = (%q, %v), want (%q, %v)", tt.from, got, ok, tt.want, tt.ok)
		}
	}
}

func TestOrderStatusPrev(t *testing.T) {
	tests := []struct {
		from OrderStatus
		want OrderStatus
		ok   bool
	}{
		{OrderStatusPreparing, OrderStatusNew, true},
		{OrderStatusReady, OrderStatusPreparing, true},
		{OrderStatusNew, "", false},
		{OrderStatusPaid, "", false}, // no reverse edge out of paid
		{OrderStatusCancelled, "", false},
	}

	for _, tt := range tests {
		got, ok := tt.from.Prev()
		if ok != tt.ok || got != tt.want {
			t.Errorf("%s.Prev() = (%q, %v), want (%q, %v)", tt.from, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNextAndPrevAreInverse(t *testing.T) {
	for from, to := range map[OrderStatus]OrderStatus{
		OrderStatusNew:       OrderStatusPreparing,
		OrderStatusPreparing: OrderStatusReady,
	} {
		next, ok := from.Next()
		if !ok || next != to {
			t.Fatalf("%s.Next() = (%q, %v)", from, next, ok)
		}
		back, ok := next.Prev()
		if !ok || back != from {
			t.Errorf("%s.Prev() = (%q, %v), want %q", next, back, ok, from)
		}
	}
}

func TestOrderStatusPredicates(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusNew, OrderStatusPreparing, OrderStatusReady, OrderStatusPaid, OrderStatusCancelled} {
		if !s.Valid() {
			t.Errorf("%s.Valid() = false", s)
		}
	}
	if OrderStatus("bogus").Valid() {
		t.Error(`"bogus" reported valid`)
	}

	if !OrderStatusPaid.IsHistorical() || !OrderStatusCancelled.IsHistorical() {
		t.Error("paid and cancelled should be historical")
	}
	if OrderStatusReady.IsHistorical() {
		t.Error("ready should not be historical")
	}

	if !OrderStatusNew.IsActive() || !OrderStatusPreparing.IsActive() {
		t.Error("new and preparing should be active")
	}
	if OrderStatusReady.IsActive() {
		t.Error("ready should not be active")
	}

	if !OrderStatusNew.AllowsItemEdit() || !OrderStatusPreparing.AllowsItemEdit() {
		t.Error("new and preparing should allow edits")
	}
	for _, s := range []OrderStatus{OrderStatusReady, OrderStatusPaid, OrderStatusCancelled} {
		if s.AllowsItemEdit() {
			t.Errorf("%s should not allow edits", s)
		}
	}
}
