package menu

import (
	"bubblebrew_server/handling"
	"bubblebrew_server/lib"
	"bubblebrew_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (mrm *MenuRoutesManager) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CreateMenuItemRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.menu.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	// One row per size variant; the service returns every id it created.
	ids, err := mrm.menuService.CreateMenuItem(r.Context(), body)
	if err != nil {
		handling.HandleServiceError(err, "error.menu.creationFailed", mrm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.menu.created"),
		gecho.WithData(map[string]any{
			"ids":   ids,
			"count": len(ids),
		}),
		gecho.Send(),
	)
}
