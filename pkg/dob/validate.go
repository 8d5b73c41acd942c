package dob

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultMinYear is the earliest accepted birth year.
const DefaultMinYear = 1900

// DefaultField is the field name used in validation errors.
const DefaultField = "dob"

var shapeRegex = regexp.MustCompile(`^[0-9]{2}/[0-9]{2}/[0-9]{4}$`)

// Option configures a Validator.
type Option func(*Validator)

// WithClock sets the source of "now" for the future-date rule.
// Nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		if now != nil {
			v.now = now
		}
	}
}

// WithLocation sets the calendar the typed date is interpreted in.
// Nil is ignored.
func WithLocation(loc *time.Location) Option {
	return func(v *Validator) {
		if loc != nil {
			v.loc = loc
		}
	}
}

// WithMinYear sets the year floor. Non-positive values are ignored.
func WithMinYear(year int) Option {
	return func(v *Validator) {
		if year > 0 {
			v.minYear = year
		}
	}
}

// WithMessages overrides the messages of the given reasons.
func WithMessages(m Messages) Option {
	return func(v *Validator) {
		v.messages = v.messages.merge(m)
	}
}

// WithField sets the field name reported in validation errors.
func WithField(name string) Option {
	return func(v *Validator) {
		if name != "" {
			v.field = name
		}
	}
}

// Validator runs the date of birth rule chain.
// It is immutable after New and safe for concurrent use.
type Validator struct {
	now      func() time.Time
	loc      *time.Location
	minYear  int
	messages Messages
	field    string
}

// New returns a Validator with the given options applied over the defaults:
// time.Now, the host's local time zone, DefaultMinYear and the built-in messages.
func New(opts ...Option) *Validator {
	v := &Validator{
		now:      time.Now,
		loc:      time.Local,
		minYear:  DefaultMinYear,
		messages: defaultMessages.merge(nil),
		field:    DefaultField,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

var std = New()

// Validate runs the chain with the default Validator.
func Validate(value string) Result {
	return std.Validate(value)
}

// Validate runs the chain against value and returns the first failure, or a
// Valid result when every rule passes.
func (v *Validator) Validate(value string) Result {
	return v.result(value, v.evaluate(value, TooOld))
}

// MinYear returns the configured year floor.
func (v *Validator) MinYear() int {
	return v.minYear
}

// Parse returns the calendar date of value at midnight in the validator's
// time zone. Only the shape and calendar rules apply; future and too-old dates
// parse fine. Failures wrap ErrInvalidDate.
func (v *Validator) Parse(value string) (time.Time, error) {
	if reason := v.evaluate(value, BadDay); reason != Valid {
		return time.Time{}, v.result(value, reason).Err()
	}
	return split(value).in(v.loc), nil
}

// Parse parses value with the default Validator.
func Parse(value string) (time.Time, error) {
	return std.Parse(value)
}

// evaluate runs the chain up to and including the rule of last.
func (v *Validator) evaluate(value string, last Reason) Reason {
	if strings.TrimSpace(value) == "" {
		return Required
	}
	if !shapeRegex.MatchString(value) {
		return BadFormat
	}

	d := split(value)
	for _, s := range chain {
		if s.reason > last {
			break
		}
		if !s.ok(v, d) {
			return s.reason
		}
	}
	return Valid
}

type step struct {
	reason Reason
	ok     func(v *Validator, d civilDate) bool
}

// chain lists the rules that need the parsed date, in evaluation order.
var chain = []step{
	{reason: BadMonth, ok: func(_ *Validator, d civilDate) bool {
		return d.month >= 1 && d.month <= 12
	}},
	{reason: BadDay, ok: func(_ *Validator, d civilDate) bool {
		return d.day >= 1 && d.day <= daysIn(d.month, d.year)
	}},
	{reason: FutureDate, ok: func(v *Validator, d civilDate) bool {
		return !d.in(v.loc).After(v.now())
	}},
	{reason: TooOld, ok: func(v *Validator, d civilDate) bool {
		return d.year >= v.minYear
	}},
}

type civilDate struct {
	month, day, year int
}

// split reads a value that already matched shapeRegex.
func split(value string) civilDate {
	month, _ := strconv.Atoi(value[0:2])
	day, _ := strconv.Atoi(value[3:5])
	year, _ := strconv.Atoi(value[6:10])
	return civilDate{month: month, day: day, year: year}
}

func (d civilDate) in(loc *time.Location) time.Time {
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, loc)
}

// IsLeapYear applies the proleptic Gregorian rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysIn(month, year int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}
