package dob_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dateinput/pkg/dob"
)

var fixedNow = time.Date(2026, time.October, 19, 15, 30, 0, 0, time.UTC)

func newTestValidator(opts ...dob.Option) *dob.Validator {
	base := []dob.Option{
		dob.WithClock(func() time.Time { return fixedNow }),
		dob.WithLocation(time.UTC),
	}
	return dob.New(append(base, opts...)...)
}

func TestValidate_Chain(t *testing.T) {
	t.Parallel()

	v := newTestValidator()

	tests := []struct {
		name     string
		value    string
		expected dob.Reason
	}{
		{name: "empty", value: "", expected: dob.Required},
		{name: "whitespace", value: " \t\n", expected: dob.Required},
		{name: "partial", value: "12/31/", expected: dob.BadFormat},
		{name: "no separators", value: "12311999", expected: dob.BadFormat},
		{name: "dashes", value: "12-31-1999", expected: dob.BadFormat},
		{name: "two digit year", value: "12/31/99", expected: dob.BadFormat},
		{name: "extra year digit", value: "12/31/19990", expected: dob.BadFormat},
		{name: "leading space", value: " 12/31/1999", expected: dob.BadFormat},
		{name: "trailing newline", value: "12/31/1999\n", expected: dob.BadFormat},
		{name: "fullwidth digits", value: "１２/３１/１９９９", expected: dob.BadFormat},
		{name: "month zero", value: "00/10/2000", expected: dob.BadMonth},
		{name: "month thirteen", value: "13/10/2000", expected: dob.BadMonth},
		{name: "month before day", value: "13/45/2020", expected: dob.BadMonth},
		{name: "day zero", value: "01/00/2000", expected: dob.BadDay},
		{name: "day thirty two", value: "01/32/2000", expected: dob.BadDay},
		{name: "april 31", value: "04/31/2020", expected: dob.BadDay},
		{name: "april 30", value: "04/30/2020", expected: dob.Valid},
		{name: "june 31", value: "06/31/2020", expected: dob.BadDay},
		{name: "september 31", value: "09/31/2020", expected: dob.BadDay},
		{name: "november 31", value: "11/31/2020", expected: dob.BadDay},
		{name: "december 31", value: "12/31/2020", expected: dob.Valid},
		{name: "leap 2000", value: "02/29/2000", expected: dob.Valid},
		{name: "not leap 1900", value: "02/29/1900", expected: dob.BadDay},
		{name: "leap 2024", value: "02/29/2024", expected: dob.Valid},
		{name: "feb 30 leap", value: "02/30/2024", expected: dob.BadDay},
		{name: "feb 29 common year", value: "02/29/2023", expected: dob.BadDay},
		{name: "feb 28 common year", value: "02/28/2023", expected: dob.Valid},
		{name: "far future", value: "01/01/2999", expected: dob.FutureDate},
		{name: "tomorrow", value: "10/20/2026", expected: dob.FutureDate},
		{name: "today", value: "10/19/2026", expected: dob.Valid},
		{name: "yesterday", value: "10/18/2026", expected: dob.Valid},
		{name: "before floor", value: "01/01/1899", expected: dob.TooOld},
		{name: "floor", value: "01/01/1900", expected: dob.Valid},
		{name: "end of 1899", value: "12/31/1899", expected: dob.TooOld},
		{name: "year zero", value: "01/01/0000", expected: dob.TooOld},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := v.Validate(tt.value)
			assert.Equal(t, tt.expected, res.Reason, "value %q", tt.value)
			assert.Equal(t, tt.value, res.Value)
			assert.Equal(t, tt.expected == dob.Valid, res.Valid())
		})
	}
}

func TestValidate_DefaultValidator(t *testing.T) {
	t.Parallel()

	assert.Equal(t, dob.Valid, dob.Validate("02/29/2000").Reason)
	assert.Equal(t, dob.BadDay, dob.Validate("02/29/1900").Reason)
	assert.Equal(t, dob.Valid, dob.Validate("02/29/2024").Reason)
	assert.Equal(t, dob.BadDay, dob.Validate("02/30/2024").Reason)
	assert.Equal(t, dob.BadDay, dob.Validate("04/31/2020").Reason)
	assert.Equal(t, dob.Valid, dob.Validate("04/30/2020").Reason)
	assert.Equal(t, dob.FutureDate, dob.Validate("01/01/2999").Reason)
	assert.Equal(t, dob.TooOld, dob.Validate("01/01/1899").Reason)
	assert.Equal(t, dob.Valid, dob.Validate("01/01/1900").Reason)
	assert.Equal(t, dob.BadMonth, dob.Validate("13/45/2020").Reason)
}

func TestValidate_TodayAcceptedAtAnyTime(t *testing.T) {
	t.Parallel()

	for _, clock := range []time.Time{
		time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.October, 19, 0, 0, 0, 1, time.UTC),
		time.Date(2026, time.October, 19, 23, 59, 59, 0, time.UTC),
	} {
		v := dob.New(dob.WithClock(func() time.Time { return clock }), dob.WithLocation(time.UTC))
		assert.True(t, v.Validate("10/19/2026").Valid(), "clock %s", clock)
		assert.Equal(t, dob.FutureDate, v.Validate("10/20/2026").Reason, "clock %s", clock)
	}
}

func TestValidate_UsesLocalCalendar(t *testing.T) {
	t.Parallel()

	// 2026-10-19 23:00 in UTC is already 2026-10-20 in Tokyo.
	tokyo := time.FixedZone("JST", 9*60*60)
	now := time.Date(2026, time.October, 19, 23, 0, 0, 0, time.UTC)

	inTokyo := dob.New(dob.WithClock(func() time.Time { return now }), dob.WithLocation(tokyo))
	inUTC := dob.New(dob.WithClock(func() time.Time { return now }), dob.WithLocation(time.UTC))

	assert.True(t, inTokyo.Validate("10/20/2026").Valid())
	assert.Equal(t, dob.FutureDate, inUTC.Validate("10/20/2026").Reason)
}

func TestValidate_Total(t *testing.T) {
	t.Parallel()

	v := newTestValidator()
	inputs := []string{
		"", "/", "//", "\x00\x01\x02", "\xff\xfe\xfd", "日本語", "🎂🎂/🎂🎂/🎂🎂🎂🎂",
		"ab/cd/efgh", "99/99/9999", "00/00/0000", strings.Repeat("1", 10000),
		strings.Repeat("/", 10), "1/1/2000", "01/01/-999", "+1/01/2000",
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() {
			res := v.Validate(in)
			if !res.Valid() {
				assert.NotEmpty(t, res.Message())
			}
		}, "input %q", in)
	}
}

func TestWithMinYear(t *testing.T) {
	t.Parallel()

	v := newTestValidator(dob.WithMinYear(1950))
	assert.Equal(t, 1950, v.MinYear())
	assert.Equal(t, dob.TooOld, v.Validate("12/31/1949").Reason)
	assert.True(t, v.Validate("01/01/1950").Valid())

	ignored := newTestValidator(dob.WithMinYear(0))
	assert.Equal(t, dob.DefaultMinYear, ignored.MinYear())
}

func TestValidate_FutureCheckedBeforeFloor(t *testing.T) {
	t.Parallel()

	v := newTestValidator(dob.WithMinYear(3000))
	assert.Equal(t, dob.FutureDate, v.Validate("01/01/2999").Reason)
	assert.Equal(t, dob.TooOld, v.Validate("01/01/2000").Reason)
}

func TestParse(t *testing.T) {
	t.Parallel()

	v := newTestValidator()

	got, err := v.Parse("02/29/2000")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2000, time.February, 29, 0, 0, 0, 0, time.UTC), got)

	// future and too-old dates are still real dates
	_, err = v.Parse("01/01/2999")
	assert.NoError(t, err)
	_, err = v.Parse("01/01/1800")
	assert.NoError(t, err)

	for _, bad := range []string{"", "1/1/2000", "13/01/2000", "02/30/2000"} {
		_, err := v.Parse(bad)
		assert.ErrorIs(t, err, dob.ErrInvalidDate, bad)
	}
}

func TestIsLeapYear(t *testing.T) {
	t.Parallel()

	assert.True(t, dob.IsLeapYear(2000))
	assert.True(t, dob.IsLeapYear(2024))
	assert.True(t, dob.IsLeapYear(1600))
	assert.False(t, dob.IsLeapYear(1900))
	assert.False(t, dob.IsLeapYear(2100))
	assert.False(t, dob.IsLeapYear(2023))
}
