package orders

import (
	"net/http"

	"bubblebrew_server/handling"
	"bubblebrew_server/lib"
	"bubblebrew_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// EditOrder replaces the customer name and line items of an order that is
// still new or preparing. Once an order hits ready its contents are locked.
func (orm *OrderRoutesManager) EditOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")
	if orderID == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("error.orders.missingId"),
			gecho.Send(),
		)
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.EditOrderRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.orders.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	order, err := orm.orderService.EditOrder(r.Context(), orderID, body)
	if err != nil {
		handling.HandleServiceError(err, "error.orders.editFailed", orm.logger, w)
		return
	}

	// Nil order means the id matched nothing; edits of vanished orders are
	// harmless no-ops, same as status taps.
	if order == nil {
		gecho.Success(w,
			gecho.WithMessage("success.orders.noChange"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.orders.edited"),
		gecho.WithData(orderPayload(order)),
		gecho.Send(),
	)
}
