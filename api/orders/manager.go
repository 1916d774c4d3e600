package orders

import (
	"bubblebrew_server/services"
	"bubblebrew_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type OrderRoutesManager struct {
	logger       *gecho.Logger
	orderService *services.OrderService
	board        *services.Projection[tables.Order]
}

func NewOrderRoutesManager(logger *gecho.Logger, orderService *services.OrderService, board *services.Projection[tables.Order]) *OrderRoutesManager {
	return &OrderRoutesManager{
		logger:       logger,
		orderService: orderService,
		board:        board,
	}
}

func (orm *OrderRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", orm.ListOrders)
		r.Post("/create", orm.CreateOrder)
		r.Get("/{orderId}", orm.GetOrder)
		r.Post("/{orderId}/advance", orm.AdvanceOrder)
		r.Post("/{orderId}/revert", orm.RevertOrder)
		r.Put("/{orderId}", orm.EditOrder)
		r.Delete("/{orderId}", orm.DeleteOrder)
	})
}

// orderPayload is the wire shape of an order. The raw id is what clients
// address the order by; display_id is the dashed form shown on tickets.
func orderPayload(o *tables.Order) map[string]any {
	return map[string]any{
		"order_id":      o.OrderID,
		"display_id":    o.DisplayID(),
		"customer_name": o.CustomerName,
		"status":        o.Status,
		"items":         o.Items,
		"total":         o.Total(),
		"created_at":    o.CreatedAt,
	}
}

func orderPayloads(orders []tables.Order) []map[string]any {
	out := make([]map[string]any, 0, len(orders))
	for i := range orders {
		out = append(out, orderPayload(&orders[i]))
	}
	return out
}
