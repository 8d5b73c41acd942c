// Command dateinput serves and exercises the date of birth input.
//
//	dateinput serve               # signup page with live masking
//	dateinput prompt              # terminal date prompt
//	dateinput mask 0 01 01/1      # replay raw edits through the mask
//	dateinput validate 02/29/2023 # exit status 1 when invalid
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		if !errors.Is(err, errInvalidDate) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
