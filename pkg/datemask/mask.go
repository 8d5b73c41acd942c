package datemask

import "strings"

const (
	// Separator is the only non-digit character the engine ever emits.
	Separator = '/'
	// MaxDigits is the digit count of a complete date (month 2, day 2, year 4).
	MaxDigits = 8
	// Layout is the placeholder shown for an empty field.
	Layout = "MM/DD/YYYY"
)

const (
	monthDigits = 2
	dayEnd      = 4
)

// Next computes the value to display after an edit.
// previous is the value shown before the edit, raw is the full content of the
// control after it. When the edit shortened the text and previous ended with a
// separator, only that separator is dropped; otherwise the value is re-derived
// from the digits in raw.
func Next(previous, raw string) string {
	if len(raw) < len(previous) && strings.HasSuffix(previous, string(Separator)) {
		return previous[:len(previous)-1]
	}
	return Format(raw)
}

// Format lays out the digits of s as MM/DD/YYYY, ignoring anything that is not
// an ASCII digit. A trailing separator is added once the month or the day is
// complete. Digits past MaxDigits are kept in the year segment.
func Format(s string) string {
	digits := Digits(s)
	n := len(digits)

	var b strings.Builder
	b.Grow(n + 2)

	switch {
	case n <= monthDigits:
		b.WriteString(digits)
		if n == monthDigits {
			b.WriteByte(Separator)
		}
	case n <= dayEnd:
		b.WriteString(digits[:monthDigits])
		b.WriteByte(Separator)
		b.WriteString(digits[monthDigits:])
		if n == dayEnd {
			b.WriteByte(Separator)
		}
	default:
		b.WriteString(digits[:monthDigits])
		b.WriteByte(Separator)
		b.WriteString(digits[monthDigits:dayEnd])
		b.WriteByte(Separator)
		b.WriteString(digits[dayEnd:])
	}

	return b.String()
}

// Digits returns the ASCII digits of raw in order.
func Digits(raw string) string {
	return nonDigitRegex.ReplaceAllString(raw, "")
}

// Replay folds Next over a sequence of raw inputs starting from an empty field
// and returns the final display value.
func Replay(inputs ...string) string {
	var shown string
	for _, raw := range inputs {
		shown = Next(shown, raw)
	}
	return shown
}

// Complete reports whether value carries the full eight digits of a date.
func Complete(value string) bool {
	return len(Digits(value)) >= MaxDigits
}
