package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/dateinput/pkg/datemask"
)

func newMaskCmd() *cobra.Command {
	var final bool

	cmd := &cobra.Command{
		Use:   "mask <raw>...",
		Short: "Replay raw field edits through the mask",
		Long: "Each argument is the raw text of the field after one edit, as the browser would report it.\n" +
			"Prints the display value after every edit, or only the last with --final.",
		Example: "  dateinput mask 0 01 01/1 01/15\n  dateinput mask --final 12252000",
		Args:    cobra.MinimumNArgs(1),
		// no config or logger needed
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if final {
				fmt.Fprintln(out, datemask.Replay(args...))
				return nil
			}

			shown := ""
			for _, raw := range args {
				shown = datemask.Next(shown, raw)
				fmt.Fprintf(out, "%q -> %q\n", raw, shown)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&final, "final", false, "Print only the final display value")
	return cmd
}
