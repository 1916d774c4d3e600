package orders

import (
	"context"
	"net/http"

	"bubblebrew_server/handling"
	"bubblebrew_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// AdvanceOrder moves an order one step forward (new -> preparing -> ready ->
// paid). Orders already at a terminal status are left untouched.
func (orm *OrderRoutesManager) AdvanceOrder(w http.ResponseWriter, r *http.Request) {
	orm.stepOrder(w, r, orm.orderService.Advance, "success.orders.advanced")
}

// RevertOrder moves an order one step back along the same chain.
func (orm *OrderRoutesManager) RevertOrder(w http.ResponseWriter, r *http.Request) {
	orm.stepOrder(w, r, orm.orderService.Revert, "success.orders.reverted")
}

func (orm *OrderRoutesManager) stepOrder(w http.ResponseWriter, r *http.Request, step func(ctx context.Context, orderID string) (*tables.Order, error), msg string) {
	orderID := chi.URLParam(r, "orderId")
	if orderID == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("error.orders.missingId"),
			gecho.Send(),
		)
		return
	}

	order, err := step(r.Context(), orderID)
	if err != nil {
		handling.HandleServiceError(err, "error.orders.statusChangeFailed", orm.logger, w)
		return
	}

	// A nil order with a nil error means the transition was a no-op (unknown
	// id or terminal status). The board treats taps on those as harmless.
	if order == nil {
		gecho.Success(w,
			gecho.WithMessage("success.orders.noChange"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage(msg),
		gecho.WithData(orderPayload(order)),
		gecho.Send(),
	)
}
