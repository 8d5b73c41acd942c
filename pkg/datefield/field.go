package datefield

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/dateinput/pkg/datemask"
	"github.com/dmitrymomot/dateinput/pkg/dob"
	"github.com/dmitrymomot/dateinput/pkg/logger"
)

// Option configures a Field.
type Option func(*Field)

// WithMode sets when the field validates.
func WithMode(m Mode) Option {
	return func(f *Field) {
		f.mode = m
	}
}

// WithValidator sets the validator. Nil is ignored.
func WithValidator(v *dob.Validator) Option {
	return func(f *Field) {
		if v != nil {
			f.validator = v
		}
	}
}

// WithLogger sets the logger used for debug events. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(f *Field) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithValue restores the display value exactly as the caller last showed it,
// without validating. Use Set to seed a value that still needs masking.
func WithValue(v string) Option {
	return func(f *Field) {
		f.value = v
	}
}

// Field is the single source of truth for one date input.
type Field struct {
	value     string
	result    dob.Result
	validated bool
	submitted bool

	mode      Mode
	validator *dob.Validator
	logger    *slog.Logger
}

// New creates an empty field. Defaults: OnChange, dob.New(), a no-op logger.
func New(opts ...Option) *Field {
	f := &Field{
		mode:      OnChange,
		validator: dob.New(),
		logger:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = f.logger.With(logger.Component("datefield"))
	return f
}

// Change applies one raw edit and returns the new display value.
func (f *Field) Change(raw string) string {
	f.value = datemask.Next(f.value, raw)
	if f.mode == OnChange || f.submitted {
		f.Validate()
	}
	return f.value
}

// Value returns the current display value.
func (f *Field) Value() string {
	return f.value
}

// Set replaces the value, normalizing it through the mask. Validation follows
// the same mode rules as Change.
func (f *Field) Set(v string) string {
	f.value = datemask.Format(v)
	if f.mode == OnChange || f.submitted {
		f.Validate()
	}
	return f.value
}

// Reset clears the value and any validation state.
func (f *Field) Reset() {
	f.value = ""
	f.result = dob.Result{}
	f.validated = false
	f.submitted = false
}

// Validate runs the validator on the current value and stores the result.
func (f *Field) Validate() dob.Result {
	f.result = f.validator.Validate(f.value)
	f.validated = true
	f.logger.LogAttrs(context.Background(), slog.LevelDebug, "dob validated",
		logger.Reason(f.result.Reason),
		logger.Length(len(f.value)),
	)
	return f.result
}

// Result returns the last validation result. Before the first validation it
// is the zero Result; use Validated to tell the two apart.
func (f *Field) Result() dob.Result {
	return f.result
}

// Validated reports whether the field has been validated at least once.
func (f *Field) Validated() bool {
	return f.validated
}

// Error returns the message of the last failed validation, or "".
func (f *Field) Error() string {
	if !f.validated {
		return ""
	}
	return f.result.Message()
}

// Submit validates the field and, when valid, returns the parsed date.
// After the first submit an OnSubmit field re-validates on every change.
func (f *Field) Submit() (time.Time, dob.Result) {
	f.submitted = true
	res := f.Validate()
	if !res.Valid() {
		return time.Time{}, res
	}
	at, err := f.validator.Parse(f.value)
	if err != nil {
		// unreachable: a valid result always parses
		return time.Time{}, res
	}
	return at, res
}
