// Package signup serves the signup form with live date of birth masking.
//
// The date field is stateless on the server: the browser keeps the last
// masked value in the dobPrev signal and sends it back with every keystroke.
//
//	svc := signup.NewService(signup.Config{}, validator, nil, log, handler.NewErrorHandler(log))
//	r.Mount("/", svc.Handle())
package signup

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/dateinput/handler"
	"github.com/dmitrymomot/dateinput/pkg/binder"
	"github.com/dmitrymomot/dateinput/pkg/datefield"
	"github.com/dmitrymomot/dateinput/pkg/dob"
	"github.com/dmitrymomot/dateinput/pkg/httpserver"
	"github.com/dmitrymomot/dateinput/pkg/logger"
)

// Config holds the module settings.
type Config struct {
	Field    datefield.Config
	BasePath string `env:"SIGNUP_BASE_PATH"` // BasePath is the mount prefix used in form actions.
}

type Service struct {
	cfg          Config
	validator    *dob.Validator
	views        *Views
	logger       *slog.Logger
	errorHandler handler.ErrorHandler
}

// NewService creates the signup module. Nil views, logger or error handler
// fall back to defaults.
func NewService(
	cfg Config,
	validator *dob.Validator,
	views *Views,
	log *slog.Logger,
	errorHandler handler.ErrorHandler,
) *Service {
	if validator == nil {
		validator = dob.New()
	}
	if log == nil {
		log = logger.Nop()
	}
	if errorHandler == nil {
		errorHandler = handler.DefaultErrorHandler
	}
	return &Service{
		cfg:          cfg,
		validator:    validator,
		views:        views.withDefaults(),
		logger:       log.With(logger.Component("signup")),
		errorHandler: errorHandler,
	}
}

func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.page,
		handler.WithErrorHandler[struct{}](s.errorHandler),
	))

	// Live masking: datastar signals in, signals and the error slot out.
	r.Post("/dob", handler.Wrap(s.dob,
		handler.WithBinders[DOBSignals](binder.Signals()),
		handler.WithErrorHandler[DOBSignals](s.errorHandler),
	))

	r.Post("/dob/validate", handler.Wrap(s.validate,
		handler.WithBinders[ValidateRequest](binder.JSON()),
		handler.WithErrorHandler[ValidateRequest](s.errorHandler),
	))

	r.Post("/dob/mask", handler.Wrap(s.mask,
		handler.WithBinders[MaskRequest](binder.JSON()),
		handler.WithErrorHandler[MaskRequest](s.errorHandler),
	))

	r.Post("/signup", handler.Wrap(s.submit,
		handler.WithBinders[SubmitRequest](binder.Form()),
		handler.WithErrorHandler[SubmitRequest](s.errorHandler),
	))

	r.Get("/health", httpserver.HealthCheckHandler(s.logger))

	return r
}

// newField restores a field from the value the client last saw.
func (s *Service) newField(previous string) *datefield.Field {
	opts := append(s.cfg.Field.Options(),
		datefield.WithValidator(s.validator),
		datefield.WithLogger(s.logger),
		datefield.WithValue(previous),
	)
	return datefield.New(opts...)
}
