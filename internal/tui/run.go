package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrymomot/dateinput/pkg/datefield"
)

// ErrCancelled is returned by Prompt when the user quits without a valid date.
var ErrCancelled = errors.New("date prompt cancelled")

// Prompt runs a DateInput on in/out until a valid date is submitted or the
// user quits. Nil in or out uses the terminal.
func Prompt(ctx context.Context, label string, in io.Reader, out io.Writer, opts ...datefield.Option) (time.Time, error) {
	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if in != nil {
		programOpts = append(programOpts, tea.WithInput(in))
	}
	if out != nil {
		programOpts = append(programOpts, tea.WithOutput(out))
	}

	final, err := tea.NewProgram(NewDateInput(label, opts...), programOpts...).Run()
	if err != nil {
		return time.Time{}, fmt.Errorf("run date prompt: %w", err)
	}

	m, ok := final.(DateInput)
	if !ok || !m.Done() {
		return time.Time{}, ErrCancelled
	}
	return m.Date(), nil
}
