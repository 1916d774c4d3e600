package menu

import (
	"bubblebrew_server/handling"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

func (mrm *MenuRoutesManager) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("error.menu.missingId"),
			gecho.Send(),
		)
		return
	}

	// Deleting an id that no longer exists is fine; the call is idempotent.
	if err := mrm.menuService.DeleteMenuItem(r.Context(), id); err != nil {
		handling.HandleServiceError(err, "error.menu.deleteFailed", mrm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.menu.deleted"),
		gecho.Send(),
	)
}
