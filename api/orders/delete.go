package orders

import (
	"net/http"

	"bubblebrew_server/handling"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// DeleteOrder removes an order from the board. Ready orders are marked
// cancelled and kept for the history view; anything else is removed outright.
func (orm *OrderRoutesManager) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")
	if orderID == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("error.orders.missingId"),
			gecho.Send(),
		)
		return
	}

	if err := orm.orderService.DeleteOrder(r.Context(), orderID); err != nil {
		handling.HandleServiceError(err, "error.orders.deleteFailed", orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.orders.deleted"),
		gecho.Send(),
	)
}
