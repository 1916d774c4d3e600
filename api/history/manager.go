package history

import (
	"net/http"

	"bubblebrew_server/handling"
	"bubblebrew_server/services"
	"bubblebrew_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type HistoryRoutesManager struct {
	logger       *gecho.Logger
	orderService *services.OrderService
	settled      *services.Projection[tables.Order]
}

func NewHistoryRoutesManager(logger *gecho.Logger, orderService *services.OrderService, settled *services.Projection[tables.Order]) *HistoryRoutesManager {
	return &HistoryRoutesManager{
		logger:       logger,
		orderService: orderService,
		settled:      settled,
	}
}

func (hrm *HistoryRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/history", func(r chi.Router) {
		r.Get("/", hrm.ListHistory)
	})
}

// ListHistory returns settled orders (paid and cancelled), newest first,
// served from the projection snapshot. A direct read covers a projection
// that failed to load at startup.
func (hrm *HistoryRoutesManager) ListHistory(w http.ResponseWriter, r *http.Request) {
	var list []tables.Order
	if hrm.settled.Loaded() {
		list = hrm.settled.Items()
	} else {
		var err error
		list, err = hrm.orderService.History(r.Context())
		if err != nil {
			handling.HandleServiceError(err, "error.history.listFailed", hrm.logger, w)
			return
		}
	}

	if q := r.URL.Query().Get("q"); q != "" {
		list = services.SearchOrders(list, q)
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"orders": historyPayloads(list),
			"count":  len(list),
		}),
		gecho.Send(),
	)
}

func historyPayloads(orders []tables.Order) []map[string]any {
	out := make([]map[string]any, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		out = append(out, map[string]any{
			"order_id":      o.OrderID,
			"display_id":    o.DisplayID(),
			"customer_name": o.CustomerName,
			"status":        o.Status,
			"items":         o.Items,
			"total":         o.Total(),
			"created_at":    o.CreatedAt,
		})
	}
	return out
}
