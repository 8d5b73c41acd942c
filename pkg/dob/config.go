package dob

import (
	"errors"
	"time"
)

// Config holds the environment-driven settings of a Validator.
type Config struct {
	MinYear      int    `env:"DOB_MIN_YEAR" envDefault:"1900"` // MinYear is the earliest accepted birth year.
	MessagesFile string `env:"DOB_MESSAGES_FILE"`              // MessagesFile is an optional YAML file overriding messages.
	Location     string `env:"DOB_TIMEZONE"`                   // Location is an IANA zone name; empty means the host's local zone.
}

// NewFromConfig creates a Validator from cfg. Only non-zero values are applied;
// opts are applied after the config and win over it.
func NewFromConfig(cfg Config, opts ...Option) (*Validator, error) {
	configOpts := make([]Option, 0, 3)

	if cfg.MinYear > 0 {
		configOpts = append(configOpts, WithMinYear(cfg.MinYear))
	}
	if cfg.MessagesFile != "" {
		m, err := LoadMessagesFile(cfg.MessagesFile)
		if err != nil {
			return nil, err
		}
		configOpts = append(configOpts, WithMessages(m))
	}
	if cfg.Location != "" {
		loc, err := time.LoadLocation(cfg.Location)
		if err != nil {
			return nil, errors.Join(ErrInvalidLocation, err)
		}
		configOpts = append(configOpts, WithLocation(loc))
	}

	return New(append(configOpts, opts...)...), nil
}
