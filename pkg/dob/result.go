package dob

import (
	"fmt"

	"github.com/dmitrymomot/dateinput/pkg/validator"
)

// Result is the outcome of one validation call.
type Result struct {
	Reason Reason
	Value  string

	field   string
	message string
	minYear int
}

func (v *Validator) result(value string, reason Reason) Result {
	return Result{
		Reason:  reason,
		Value:   value,
		field:   v.field,
		message: v.messages[reason],
		minYear: v.minYear,
	}
}

// Valid reports whether every rule passed.
func (r Result) Valid() bool {
	return r.Reason == Valid
}

// Message returns the user-facing message, empty when valid.
func (r Result) Message() string {
	if r.Valid() {
		return ""
	}
	if r.message != "" {
		return r.message
	}
	return r.Reason.Message()
}

// Field returns the field name the result reports under.
func (r Result) Field() string {
	if r.field == "" {
		return DefaultField
	}
	return r.field
}

// ValidationError converts a failed result into a single validator error.
func (r Result) ValidationError() validator.ValidationError {
	values := map[string]any{
		"field":  r.Field(),
		"reason": r.Reason.String(),
	}
	if r.Reason == TooOld {
		values["min_year"] = r.minYear
	}
	return validator.ValidationError{
		Field:             r.Field(),
		Message:           r.Message(),
		TranslationKey:    r.Reason.TranslationKey(),
		TranslationValues: values,
	}
}

// Err returns nil for a valid result, otherwise validator.ValidationErrors
// joined with ErrInvalidDate so both errors.Is and errors.As work.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidDate, validator.ValidationErrors{r.ValidationError()})
}

// String returns the reason name, with the message when invalid.
func (r Result) String() string {
	if r.Valid() {
		return r.Reason.String()
	}
	return r.Reason.String() + ": " + r.Message()
}
