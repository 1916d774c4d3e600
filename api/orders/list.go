package orders

import (
	"net/http"

	"bubblebrew_server/handling"
	"bubblebrew_server/services"
	"bubblebrew_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

func (orm *OrderRoutesManager) ListOrders(w http.ResponseWriter, r *http.Request) {
	opts, err := handling.ParseOrderListOptions(r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.orders.invalidQuery"),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
		return
	}

	// The board projection mirrors every order; tab filtering happens on the
	// snapshot, as the order board does. Direct reads cover a projection
	// that failed to load at startup.
	var list []tables.Order
	if orm.board.Loaded() {
		list = filterByTab(orm.board.Items(), opts.Tab)
	} else {
		switch opts.Tab {
		case "active":
			list, err = orm.orderService.ActiveOrders(r.Context())
		case "ready":
			list, err = orm.orderService.ReadyOrders(r.Context())
		default:
			list, err = orm.orderService.ListOrders(r.Context())
		}
		if err != nil {
			handling.HandleServiceError(err, "error.orders.listFailed", orm.logger, w)
			return
		}
	}

	if opts.Search != "" {
		list = services.SearchOrders(list, opts.Search)
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"orders": orderPayloads(list),
			"count":  len(list),
		}),
		gecho.Send(),
	)
}

func filterByTab(orders []tables.Order, tab string) []tables.Order {
	switch tab {
	case "active":
		return filterByStatus(orders, tables.OrderStatus.IsActive)
	case "ready":
		return filterByStatus(orders, func(s tables.OrderStatus) bool {
			return s == tables.OrderStatusReady
		})
	default:
		return orders
	}
}

func filterByStatus(orders []tables.Order, keep func(tables.OrderStatus) bool) []tables.Order {
	out := make([]tables.Order, 0, len(orders))
	for _, order := range orders {
		if keep(order.Status) {
			out = append(out, order)
		}
	}
	return out
}

func (orm *OrderRoutesManager) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")
	if orderID == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("error.orders.missingId"),
			gecho.Send(),
		)
		return
	}

	order, err := orm.orderService.GetOrder(r.Context(), orderID)
	if err != nil {
		handling.HandleServiceError(err, "error.orders.notFound", orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(orderPayload(order)),
		gecho.Send(),
	)
}
