package binder

import "errors"

var (
	// ErrBinderNotApplicable is returned when a binder does not handle the request's content type.
	ErrBinderNotApplicable = errors.New("binder not applicable")

	// ErrBadRequest is wrapped by every decoding failure.
	ErrBadRequest = errors.New("bad request")

	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidJSON          = errors.New("failed to parse JSON request body")
	ErrInvalidForm          = errors.New("failed to parse form data")
	ErrInvalidSignals       = errors.New("failed to read datastar signals")
)
