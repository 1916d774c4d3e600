package menu

import (
	"bubblebrew_server/handling"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// ListMenuItems serves the catalog from the live projection: the snapshot is
// kept current by the store's change feed, so no query runs per request. A
// direct read covers the case where the projection failed to load at startup.
func (mrm *MenuRoutesManager) ListMenuItems(w http.ResponseWriter, r *http.Request) {
	if mrm.catalog.Loaded() {
		items := mrm.catalog.Items()
		gecho.Success(w,
			gecho.WithData(map[string]any{
				"items": items,
				"count": len(items),
			}),
			gecho.Send(),
		)
		return
	}

	items, err := mrm.menuService.ListMenuItems(r.Context())
	if err != nil {
		handling.HandleServiceError(err, "error.menu.listFailed", mrm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"items": items,
			"count": len(items),
		}),
		gecho.Send(),
	)
}
