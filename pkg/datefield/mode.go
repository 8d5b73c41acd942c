package datefield

import (
	"fmt"
	"strings"
)

// Mode selects when a Field validates.
type Mode int

const (
	// OnChange validates after every change.
	OnChange Mode = iota
	// OnSubmit validates on Submit, then on every change after the first submit.
	OnSubmit
)

// String returns "change" or "submit".
func (m Mode) String() string {
	switch m {
	case OnChange:
		return "change"
	case OnSubmit:
		return "submit"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses a mode name. Both "change" and "onChange" spellings are accepted.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "change", "onchange":
		return OnChange, nil
	case "submit", "onsubmit":
		return OnSubmit, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler so Mode can be read from env tags.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m != OnChange && m != OnSubmit {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	return []byte(m.String()), nil
}
