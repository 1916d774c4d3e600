package api

import (
	"bubblebrew_server/api/events"
	"bubblebrew_server/api/health"
	"bubblebrew_server/api/history"
	"bubblebrew_server/api/menu"
	"bubblebrew_server/api/orders"
	"bubblebrew_server/database"
	"bubblebrew_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	menuRoutes    *menu.MenuRoutesManager
	orderRoutes   *orders.OrderRoutesManager
	historyRoutes *history.HistoryRoutesManager
	healthRoutes  *health.HealthRoutesManager
	eventRoutes   *events.EventRoutesManager
}

func NewRouterManager(logger *gecho.Logger, store *database.Store, sm *services.ServiceManager) *routerManager {
	return &routerManager{
		menuRoutes:    menu.NewMenuRoutesManager(logger, sm.MenuService, sm.MenuProjection),
		orderRoutes:   orders.NewOrderRoutesManager(logger, sm.OrderService, sm.OrderProjection),
		historyRoutes: history.NewHistoryRoutesManager(logger, sm.OrderService, sm.HistoryProjection),
		healthRoutes:  health.NewHealthRoutesManager(sm.HealthService),
		eventRoutes:   events.NewEventRoutesManager(logger, store),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.menuRoutes.RegisterRoutes(r)
	rm.orderRoutes.RegisterRoutes(r)
	rm.historyRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
	rm.eventRoutes.RegisterRoutes(r)
}
