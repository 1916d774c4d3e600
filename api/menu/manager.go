package menu

import (
	"bubblebrew_server/services"
	"bubblebrew_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type MenuRoutesManager struct {
	logger      *gecho.Logger
	menuService *services.MenuService
	catalog     *services.Projection[tables.MenuItem]
}

func NewMenuRoutesManager(logger *gecho.Logger, menuService *services.MenuService, catalog *services.Projection[tables.MenuItem]) *MenuRoutesManager {
	return &MenuRoutesManager{
		logger:      logger,
		menuService: menuService,
		catalog:     catalog,
	}
}

func (mrm *MenuRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/menu", func(r chi.Router) {
		r.Get("/", mrm.ListMenuItems)
		r.Post("/create", mrm.CreateMenuItem)
		r.Patch("/{id}", mrm.UpdateMenuItem)
		r.Delete("/{id}", mrm.DeleteMenuItem)
	})
}
