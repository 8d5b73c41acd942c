// Package dob validates a typed date of birth in the MM/DD/YYYY layout.
//
// Validation is an ordered chain of checks that stops at the first failure, so
// a value that breaks several rules always reports the earliest one:
//
//  1. Required   - empty or whitespace-only input
//  2. BadFormat  - not exactly two digits, "/", two digits, "/", four digits
//  3. BadMonth   - month outside 1..12
//  4. BadDay     - day outside the month, with Gregorian leap years for February
//  5. FutureDate - the date, at local midnight, is later than now
//  6. TooOld     - year before the minimum (1900 by default)
//
// The outcome is a Result carrying one Reason; Valid means every rule passed.
// Invalid input is a normal outcome, never an error or a panic, and the chain
// is total over all strings.
//
// # Usage
//
//	res := dob.Validate("02/29/2023")
//	if !res.Valid() {
//		fmt.Println(res.Reason, res.Message()) // bad_day Invalid date for the month
//	}
//
// A Validator with options fixes the clock, time zone, year floor or messages:
//
//	v := dob.New(
//		dob.WithClock(func() time.Time { return fixedNow }),
//		dob.WithMinYear(1910),
//	)
//	res := v.Validate(input)
//
// To validate the date together with other form fields, adapt the chain into a
// validator.Rule:
//
//	err := validator.Apply(
//		validator.ValidEmail("email", req.Email),
//		v.Rule("dob", req.DOB),
//	)
//
// The Reason set is closed. Adding a rule means adding a Reason and choosing its
// position in the chain, because that position decides which message a value
// with several problems shows.
package dob
