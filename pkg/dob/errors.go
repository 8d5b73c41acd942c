package dob

import "errors"

var (
	// ErrUnknownReason is returned when a reason name or value is not part of the chain.
	ErrUnknownReason = errors.New("unknown dob reason")

	// ErrInvalidDate is returned by Parse when the value is not a real calendar date.
	ErrInvalidDate = errors.New("invalid date of birth")

	// ErrInvalidMessages is returned when a messages file cannot be decoded.
	ErrInvalidMessages = errors.New("invalid dob messages")

	// ErrInvalidLocation is returned when the configured time zone cannot be loaded.
	ErrInvalidLocation = errors.New("invalid dob time zone")
)
