package handler

import (
	"log/slog"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/dateinput/pkg/logger"
	"github.com/dmitrymomot/dateinput/pkg/requestid"
)

// NewErrorHandler returns an ErrorHandler that logs err and answers in the
// caller's format: DataStar clients get an "error" signal, everyone else the
// JSONError body. Client errors log at warn, server errors at error.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("error_handler"))

	return func(ctx Context, err error) {
		r := ctx.Request()
		status, detail := ErrorToDetail(err)

		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			slog.Int("status_code", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("is_datastar", IsDataStar(r)),
		)

		if IsDataStar(r) {
			sse := datastar.NewSSE(ctx.ResponseWriter(), r)
			if sendErr := sse.MarshalAndPatchSignals(map[string]any{"error": detail.Message}); sendErr != nil {
				log.LogAttrs(r.Context(), slog.LevelError, "failed to send error signal", logger.Error(sendErr))
			}
			return
		}

		resp := jsonResponse{status: status, body: JSONResponse{Error: detail}}
		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.LogAttrs(r.Context(), slog.LevelError, "failed to render error", logger.Error(renderErr))
		}
	}
}
