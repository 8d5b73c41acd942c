package dob

import "fmt"

// Reason identifies which rule of the chain decided the outcome.
type Reason int

const (
	Valid Reason = iota
	Required
	BadFormat
	BadMonth
	BadDay
	FutureDate
	TooOld
)

// Reasons returns the failure reasons in chain order.
func Reasons() []Reason {
	return []Reason{Required, BadFormat, BadMonth, BadDay, FutureDate, TooOld}
}

var reasonNames = [...]string{
	Valid:      "valid",
	Required:   "required",
	BadFormat:  "bad_format",
	BadMonth:   "bad_month",
	BadDay:     "bad_day",
	FutureDate: "future_date",
	TooOld:     "too_old",
}

var defaultMessages = Messages{
	Required:   "DOB is required",
	BadFormat:  "Invalid date format, use MM/DD/YYYY",
	BadMonth:   "Invalid month for the year",
	BadDay:     "Invalid date for the month",
	FutureDate: "No future dates allowed",
	TooOld:     "No past centuries allowed",
}

var translationKeys = [...]string{
	Required:   "validation.dob_required",
	BadFormat:  "validation.dob_format",
	BadMonth:   "validation.dob_month",
	BadDay:     "validation.dob_day",
	FutureDate: "validation.dob_future",
	TooOld:     "validation.dob_too_old",
}

func (r Reason) known() bool {
	return r >= Valid && r <= TooOld
}

// String returns the snake_case name of the reason.
func (r Reason) String() string {
	if !r.known() {
		return fmt.Sprintf("reason(%d)", int(r))
	}
	return reasonNames[r]
}

// Message returns the default user-facing message, empty for Valid.
func (r Reason) Message() string {
	return defaultMessages[r]
}

// TranslationKey returns the i18n key of the reason, empty for Valid.
func (r Reason) TranslationKey() string {
	if !r.known() || r == Valid {
		return ""
	}
	return translationKeys[r]
}

// MarshalText implements encoding.TextMarshaler.
func (r Reason) MarshalText() ([]byte, error) {
	if !r.known() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownReason, int(r))
	}
	return []byte(reasonNames[r]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Reason) UnmarshalText(text []byte) error {
	parsed, err := ParseReason(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseReason resolves a reason from its snake_case name.
func ParseReason(name string) (Reason, error) {
	for i, n := range reasonNames {
		if n == name {
			return Reason(i), nil
		}
	}
	return Valid, fmt.Errorf("%w: %q", ErrUnknownReason, name)
}
