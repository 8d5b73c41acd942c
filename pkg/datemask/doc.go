// Package datemask turns raw keystroke input into a MM/DD/YYYY display string.
//
// The engine is a single pure transition: given the value shown before an edit
// and the full text the control holds after it, Next returns the value to show
// next. Separators are inserted as digits arrive, and a backspace that lands on
// an inserted separator removes exactly that separator.
//
// The package never judges whether a date is real; that is the job of the dob
// package. It keeps no state of its own: the caller stores the returned value
// and passes it back as previous on the next edit.
//
// # Usage
//
//	var shown string
//	shown = datemask.Next(shown, "1")    // "1"
//	shown = datemask.Next(shown, "12")   // "12/"
//	shown = datemask.Next(shown, "12/3") // "12/3"
//	shown = datemask.Next(shown, "12/")  // "12/" (digit removed, re-derived)
//	shown = datemask.Next(shown, "12")   // "12"  (separator removed)
//
// Pasted or pre-formatted text is accepted as is, every non-digit character is
// dropped before re-deriving the layout:
//
//	datemask.Next("", "1-2.2024 07") // "12/20/2407"
package datemask
