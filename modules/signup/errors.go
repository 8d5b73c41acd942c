package signup

import (
	"net/http"

	"github.com/dmitrymomot/dateinput/handler"
)

// ErrDataStarRequired is returned when a signal endpoint is called without the datastar client.
var ErrDataStarRequired = handler.NewHTTPError(http.StatusBadRequest, "datastar_required")
