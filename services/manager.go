package services

import (
	"bubblebrew_server/database"
	"bubblebrew_server/structs"
	"bubblebrew_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	MenuService   *MenuService
	OrderService  *OrderService
	HealthService *HealthService

	MenuProjection    *Projection[tables.MenuItem]
	OrderProjection   *Projection[tables.Order]
	HistoryProjection *Projection[tables.Order]
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, store *database.Store) *ServiceManager {
	menuService := NewMenuService(logger, store)
	orderService := NewOrderService(logger, store)
	healthService := NewHealthService(logger, store)

	return &ServiceManager{
		MenuService:   menuService,
		OrderService:  orderService,
		HealthService: healthService,

		MenuProjection:    NewMenuProjection(logger, store),
		OrderProjection:   NewOrderProjection(logger, store),
		HistoryProjection: NewHistoryProjection(logger, store),
	}
}
