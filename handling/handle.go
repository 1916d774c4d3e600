package handling

import (
	"errors"
	"net/http"

	"bubblebrew_server/lib"

	"github.com/MonkyMars/gecho"
)

// HandleServiceError maps service-layer failures onto HTTP responses:
// validation problems become 400 with field details, missing records 404,
// conflicts and locked orders 409, anything else a logged 500.
func HandleServiceError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) error {
	var ve *lib.ValidationError
	if errors.As(err, &ve) {
		return gecho.BadRequest(w,
			gecho.WithMessage(msg),
			gecho.WithData(ve),
			gecho.Send(),
		)
	}

	if errors.Is(err, lib.ErrNotFound) {
		return gecho.NotFound(w,
			gecho.WithMessage(msg),
			gecho.Send(),
		)
	}

	// Duplicate order id: two orders in the same minute and second of the
	// same day. The id scheme makes this possible; surface it, don't mask it.
	if errors.Is(err, lib.ErrConflict) {
		return gecho.Conflict(w,
			gecho.WithMessage(msg),
			gecho.WithData(map[string]string{"error": "duplicate id"}),
			gecho.Send(),
		)
	}

	if errors.Is(err, lib.ErrOrderLocked) {
		return gecho.Conflict(w,
			gecho.WithMessage(msg),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
	}

	logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg), gecho.WithCallerSkip(3))
	return gecho.InternalServerError(w,
		gecho.WithMessage(msg),
		gecho.Send(),
	)
}
