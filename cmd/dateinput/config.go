package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/dateinput/modules/signup"
	"github.com/dmitrymomot/dateinput/pkg/config"
	"github.com/dmitrymomot/dateinput/pkg/dob"
	"github.com/dmitrymomot/dateinput/pkg/httpserver"
	"github.com/dmitrymomot/dateinput/pkg/logger"
	"github.com/dmitrymomot/dateinput/pkg/requestid"
)

const serviceName = "dateinput"

// appConfig is the whole environment of the binary.
type appConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	DOB    dob.Config
	Signup signup.Config
	HTTP   httpserver.Config
}

func loadConfig(files ...string) (appConfig, error) {
	var cfg appConfig
	if err := config.Load(&cfg, files...); err != nil {
		return appConfig{}, err
	}
	switch logger.Format(cfg.LogFormat) {
	case "", logger.FormatJSON, logger.FormatText:
	default:
		return appConfig{}, fmt.Errorf("%w: LOG_FORMAT must be %q or %q, got %q",
			config.ErrParsingConfig, logger.FormatJSON, logger.FormatText, cfg.LogFormat)
	}
	return cfg, nil
}

// newLogger starts from the environment defaults; LOG_LEVEL and LOG_FORMAT override them.
func newLogger(cfg appConfig, w io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithOutput(w),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	return logger.New(opts...)
}
