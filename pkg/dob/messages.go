package dob

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Messages maps failure reasons to user-facing text.
type Messages map[Reason]string

// merge returns a copy of m with the non-empty entries of other applied.
func (m Messages) merge(other Messages) Messages {
	out := make(Messages, len(m)+len(other))
	for k, v := range m {
		out[k] = v
	}
	for k, v := range other {
		if v != "" && k != Valid && k.known() {
			out[k] = v
		}
	}
	return out
}

// LoadMessages decodes a YAML mapping of reason names to messages:
//
//	required: "Date of birth is required"
//	future_date: "That date hasn't happened yet"
//
// Unknown names and the "valid" key are rejected.
func LoadMessages(r io.Reader) (Messages, error) {
	var raw map[string]string
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Messages{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidMessages, err)
	}

	out := make(Messages, len(raw))
	for name, msg := range raw {
		reason, err := ParseReason(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidMessages, err)
		}
		if reason == Valid {
			return nil, fmt.Errorf("%w: %q has no message", ErrInvalidMessages, name)
		}
		out[reason] = msg
	}
	return out, nil
}

// LoadMessagesFile reads messages from a YAML file.
func LoadMessagesFile(path string) (Messages, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMessages, err)
	}
	defer f.Close()
	return LoadMessages(f)
}
