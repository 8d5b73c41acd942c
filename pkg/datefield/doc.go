// Package datefield keeps the state of one date of birth input.
//
// A Field owns the masked display value and the last validation result. Every
// keystroke goes through Change, which re-masks against the previous value and,
// depending on the Mode, re-runs the validator:
//
//	f := datefield.New(datefield.WithValidator(v))
//	f.Change("0")        // "0"
//	f.Change("01")       // "01/"
//	f.Change("01/1")     // "01/1"
//	f.Error()            // "Invalid date format"
//
//	at, res := f.Submit()
//
// A Field is owned by a single input and is not safe for concurrent use.
package datefield
