package orders

import (
	"net/http"

	"bubblebrew_server/handling"
	"bubblebrew_server/lib"
	"bubblebrew_server/structs"

	"github.com/MonkyMars/gecho"
)

func (orm *OrderRoutesManager) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.OrderRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.orders.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	order, err := orm.orderService.CreateOrder(r.Context(), body)
	if err != nil {
		handling.HandleServiceError(err, "error.orders.creationFailed", orm.logger, w)
		return
	}

	orm.logger.Info("Order created",
		gecho.Field("order_id", order.OrderID),
		gecho.Field("items", len(order.Items)),
	)

	gecho.Success(w,
		gecho.WithMessage("success.orders.created"),
		gecho.WithData(orderPayload(order)),
		gecho.Send(),
	)
}
