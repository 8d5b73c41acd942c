package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/dateinput/pkg/dob"
)

// app carries what every subcommand needs once the root has loaded config.
type app struct {
	envFiles  []string
	logLevel  string
	cfg       appConfig
	log       *slog.Logger
	validator *dob.Validator
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "dateinput",
		Short:         "Date of birth masking and validation",
		Long:          "Masks MM/DD/YYYY date of birth input as it is typed and validates the result.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "Load environment from these files (default .env)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Override LOG_LEVEL (debug, info, warn, error)")

	root.AddCommand(
		newServeCmd(a),
		newPromptCmd(a),
		newMaskCmd(),
		newValidateCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.envFiles...)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}

	a.cfg = cfg
	a.log = newLogger(cfg, cmd.ErrOrStderr())

	a.validator, err = dob.NewFromConfig(cfg.DOB)
	if err != nil {
		return err
	}
	return nil
}
