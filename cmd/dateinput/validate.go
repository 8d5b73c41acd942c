package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/dateinput/pkg/dob"
)

// errInvalidDate makes the process exit 1 without printing the error twice.
var errInvalidDate = errors.New("invalid date of birth")

type validateOutput struct {
	Value   string     `json:"value"`
	Valid   bool       `json:"valid"`
	Reason  dob.Reason `json:"reason"`
	Message string     `json:"message,omitempty"`
}

func newValidateCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "validate <value>",
		Short: "Validate a MM/DD/YYYY date of birth",
		Long:  "Validate a date of birth and print the outcome. Exits with status 1 when the date is invalid.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := a.validator.Validate(args[0])
			out := cmd.OutOrStdout()

			if asJSON {
				if err := json.NewEncoder(out).Encode(validateOutput{
					Value:   res.Value,
					Valid:   res.Valid(),
					Reason:  res.Reason,
					Message: res.Message(),
				}); err != nil {
					return err
				}
			} else if res.Valid() {
				fmt.Fprintln(out, "valid")
			} else {
				fmt.Fprintf(out, "%s: %s\n", res.Reason, res.Message())
			}

			if !res.Valid() {
				return errInvalidDate
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}
