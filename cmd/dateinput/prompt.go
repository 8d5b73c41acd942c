package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/dateinput/internal/tui"
	"github.com/dmitrymomot/dateinput/pkg/datefield"
)

func newPromptCmd(a *app) *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Ask for a date of birth in the terminal",
		Long:  "Ask for a date of birth in the terminal and print it as YYYY-MM-DD once a valid date is submitted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := append(a.cfg.Signup.Field.Options(),
				datefield.WithValidator(a.validator),
				datefield.WithLogger(a.log),
			)

			// bubbletea opens the tty itself when given no reader
			in := cmd.InOrStdin()
			if in == os.Stdin {
				in = nil
			}

			date, err := tui.Prompt(cmd.Context(), label, in, cmd.ErrOrStderr(), opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), date.Format(time.DateOnly))
			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "Date of Birth", "Prompt label")
	return cmd
}
