package datemask

import "regexp"

// RE2 \D matches everything except ASCII 0-9.
var nonDigitRegex = regexp.MustCompile(`\D`)
