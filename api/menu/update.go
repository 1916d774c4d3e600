package menu

import (
	"bubblebrew_server/handling"
	"bubblebrew_server/lib"
	"bubblebrew_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

func (mrm *MenuRoutesManager) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("error.menu.missingId"),
			gecho.Send(),
		)
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateMenuItemRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.menu.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	if err := mrm.menuService.UpdateMenuItem(r.Context(), id, body); err != nil {
		handling.HandleServiceError(err, "error.menu.updateFailed", mrm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.menu.updated"),
		gecho.Send(),
	)
}
