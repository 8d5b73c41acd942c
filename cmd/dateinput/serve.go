package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/dateinput/handler"
	"github.com/dmitrymomot/dateinput/modules/signup"
	"github.com/dmitrymomot/dateinput/pkg/httpserver"
	"github.com/dmitrymomot/dateinput/pkg/requestid"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the signup page",
		Long:  "Serve the signup form with live date of birth masking over DataStar.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			httpCfg := a.cfg.HTTP
			if addr != "" {
				httpCfg.Addr = addr
			}
			srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(a.log))
			return srv.Run(cmd.Context(), a.router())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Override HTTP_ADDR")
	return cmd
}

func (a *app) router() http.Handler {
	svc := signup.NewService(a.cfg.Signup, a.validator, nil, a.log, handler.NewErrorHandler(a.log))

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)

	base := a.cfg.Signup.BasePath
	if base == "" {
		base = "/"
	}
	r.Mount(base, svc.Handle())
	return r
}
