// Package tui provides a terminal date of birth prompt.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrymomot/dateinput/pkg/datefield"
	"github.com/dmitrymomot/dateinput/pkg/datemask"
	"github.com/dmitrymomot/dateinput/pkg/dob"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// DateInput is a bubbletea model that masks every keystroke through a
// datefield.Field and submits on enter once the date is valid.
type DateInput struct {
	Label  string
	KeyMap KeyMap

	field *datefield.Field
	input textinput.Model
	help  help.Model

	date      time.Time
	done      bool
	cancelled bool
	width     int
}

// NewDateInput creates a focused prompt backed by a new field built from opts.
func NewDateInput(label string, opts ...datefield.Option) DateInput {
	in := textinput.New()
	in.Placeholder = datemask.Layout
	in.CharLimit = datemask.MaxDigits + 2
	in.Prompt = "> "
	in.Focus()

	return DateInput{
		Label:  label,
		KeyMap: DefaultKeyMap(),
		field:  datefield.New(opts...),
		input:  in,
		help:   help.New(),
		width:  40,
	}
}

func (m DateInput) Init() tea.Cmd {
	return textinput.Blink
}

func (m DateInput) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.KeyMap.Quit):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.KeyMap.Submit):
			at, res := m.field.Submit()
			if !res.Valid() {
				return m, nil
			}
			m.date = at
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if raw := m.input.Value(); raw != m.field.Value() {
		m.input.SetValue(m.field.Change(raw))
		m.input.CursorEnd()
	}
	return m, cmd
}

func (m DateInput) View() string {
	status := ""
	switch {
	case m.done:
		status = okStyle.Render("✓ " + m.date.Format("January 2, 2006"))
	case m.field.Error() != "":
		status = errorStyle.Render(m.field.Error())
	case datemask.Complete(m.field.Value()):
		status = hintStyle.Render("press enter to submit")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Width(m.width).Render(m.Label),
		m.input.View(),
		status,
		m.help.View(m.KeyMap),
	) + "\n"
}

// Value returns the masked display value.
func (m DateInput) Value() string {
	return m.field.Value()
}

// Result returns the field's last validation result.
func (m DateInput) Result() dob.Result {
	return m.field.Result()
}

// Date returns the submitted date; zero until Done.
func (m DateInput) Date() time.Time {
	return m.date
}

// Done reports whether a valid date was submitted.
func (m DateInput) Done() bool {
	return m.done
}

// Cancelled reports whether the user quit without submitting.
func (m DateInput) Cancelled() bool {
	return m.cancelled
}
