package services

import (
	"bubblebrew_server/database"
	"bubblebrew_server/lib"
	"bubblebrew_server/structs"
	"bubblebrew_server/structs/tables"
	"context"
	"fmt"
	"math"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/uptrace/bun"
)

// MenuService owns catalog CRUD. A logical item with size variants fans out
// into one row per size inside a single transaction, so live views only ever
// observe the full burst of new rows.
type MenuService struct {
	logger *gecho.Logger
	store  *database.Store
}

func NewMenuService(logger *gecho.Logger, store *database.Store) *MenuService {
	return &MenuService{
		logger: logger,
		store:  store,
	}
}

// CreateMenuItem creates one catalog row per size variant, or a single
// size-less row, and returns the new ids in request order. Ids are generated
// before the transaction opens so the write itself stays a plain insert loop.
func (ms *MenuService) CreateMenuItem(ctx context.Context, req *structs.CreateMenuItemRequest) ([]string, error) {
	if err := ms.validateCreate(req); err != nil {
		return nil, err
	}

	now := time.Now()
	items := buildMenuRows(req, now)
	ids := make([]string, len(items))
	for i := range items {
		ids[i] = items[i].ID
	}

	handle, err := ms.store.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	defer handle.Close()

	err = handle.Write(ctx, func(ctx context.Context, tx bun.Tx) error {
		for i := range items {
			if _, err := tx.NewInsert().Model(&items[i]).Exec(ctx); err != nil {
				return err
			}
		}
		return nil
	}, database.CollectionMenuItems)
	if err != nil {
		ms.logger.Error("Failed to create menu item", gecho.Field("name", req.Name), gecho.Field("error", err))
		return nil, err
	}

	ms.logger.Info("Menu item created", gecho.Field("name", req.Name), gecho.Field("rows", len(ids)))
	return ids, nil
}

// UpdateMenuItem applies a partial patch to the row matching id inside one
// transaction. A missing id is a silent no-op, not an error: success does not
// imply the record existed.
func (ms *MenuService) UpdateMenuItem(ctx context.Context, id string, patch *structs.UpdateMenuItemRequest) error {
	if patch.Price != nil && !isValidPrice(*patch.Price) {
		return lib.NewValidationError("price", "must be a finite number greater than or equal to 0")
	}
	if patch.Name != nil && *patch.Name == "" {
		return lib.NewValidationError("name", "is required")
	}

	handle, err := ms.store.Open()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer handle.Close()

	return handle.Write(ctx, func(ctx context.Context, tx bun.Tx) error {
		item := new(tables.MenuItem)
		err := tx.NewSelect().Model(item).Where("id = ?", id).Scan(ctx)
		if err != nil {
			if lib.MapStoreError(err) == lib.ErrNotFound {
				return nil
			}
			return err
		}

		if patch.Name != nil {
			item.Name = *patch.Name
		}
		if patch.Price != nil {
			item.Price = *patch.Price
		}
		if patch.SizeLabel != nil {
			item.SizeLabel = patch.SizeLabel
		}
		if patch.Category != nil {
			item.Category = patch.Category
		}
		if patch.ImageURI != nil {
			item.ImageURI = patch.ImageURI
		}

		_, err = tx.NewUpdate().Model(item).WherePK().Exec(ctx)
		return err
	}, database.CollectionMenuItems)
}

// DeleteMenuItem removes the row matching id; a missing id is a silent
// no-op. Order processing never calls this - placed orders keep their
// snapshots regardless of catalog deletes.
func (ms *MenuService) DeleteMenuItem(ctx context.Context, id string) error {
	handle, err := ms.store.Open()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer handle.Close()

	return handle.Write(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().Model((*tables.MenuItem)(nil)).Where("id = ?", id).Exec(ctx)
		return err
	}, database.CollectionMenuItems)
}

// ListMenuItems returns every catalog row, newest first. This is the one-shot
// read; the always-current view lives in the menu projection.
func (ms *MenuService) ListMenuItems(ctx context.Context) ([]tables.MenuItem, error) {
	handle, err := ms.store.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	defer handle.Close()

	return database.NewQuery[tables.MenuItem](handle).
		OrderBy("created_at", database.DESC).
		All(ctx)
}

// GetMenuItem returns the row matching id, or lib.ErrNotFound.
func (ms *MenuService) GetMenuItem(ctx context.Context, id string) (*tables.MenuItem, error) {
	handle, err := ms.store.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	defer handle.Close()

	item, err := database.FindByPK[tables.MenuItem](handle, ctx, "id", id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, lib.ErrNotFound
	}
	return item, nil
}

func (ms *MenuService) validateCreate(req *structs.CreateMenuItemRequest) error {
	if req.Name == "" {
		return lib.NewValidationError("name", "is required")
	}
	if !isValidPrice(req.BasePrice) {
		return lib.NewValidationError("base_price", "must be a finite number greater than or equal to 0")
	}
	for _, size := range req.Sizes {
		if size.Label == "" {
			return lib.NewValidationError("sizes.label", "is required")
		}
		if size.Price != nil && !isValidPrice(*size.Price) {
			return lib.NewValidationError("sizes.price", "must be a finite number greater than or equal to 0")
		}
	}
	return nil
}

// buildMenuRows expands a creation request into its catalog rows: one per
// size variant (price falling back to the base price), or a single row with
// no size label.
func buildMenuRows(req *structs.CreateMenuItemRequest, createdAt time.Time) []tables.MenuItem {
	if len(req.Sizes) == 0 {
		return []tables.MenuItem{{
			ID:        lib.NewItemID(),
			Name:      req.Name,
			SizeLabel: nil,
			Price:     req.BasePrice,
			Category:  req.Category,
			ImageURI:  req.ImageURI,
			CreatedAt: createdAt,
		}}
	}

	rows := make([]tables.MenuItem, 0, len(req.Sizes))
	for _, size := range req.Sizes {
		price := req.BasePrice
		if size.Price != nil {
			price = *size.Price
		}
		label := size.Label
		rows = append(rows, tables.MenuItem{
			ID:        lib.NewItemID(),
			Name:      req.Name,
			SizeLabel: &label,
			Price:     price,
			Category:  req.Category,
			ImageURI:  req.ImageURI,
			CreatedAt: createdAt,
		})
	}
	return rows
}

func isValidPrice(price float64) bool {
	return !math.IsNaN(price) && !math.IsInf(price, 0) && price >= 0
}
