package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxJSONSize is the maximum size of a JSON request body (1MB).
const DefaultMaxJSONSize = 1 << 20

// JSON decodes an application/json body into v. Unknown fields, trailing data
// and bodies over DefaultMaxJSONSize are rejected.
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		switch mediaType(r) {
		case "":
			return fmt.Errorf("%w: %w: expected application/json", ErrBadRequest, ErrMissingContentType)
		case "application/json":
		default:
			return ErrBinderNotApplicable
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
		if err != nil {
			return fmt.Errorf("%w: %w: %v", ErrBadRequest, ErrInvalidJSON, err)
		}
		if len(body) > DefaultMaxJSONSize {
			return fmt.Errorf("%w: %w: body too large (max %d bytes)", ErrBadRequest, ErrInvalidJSON, DefaultMaxJSONSize)
		}

		return decodeStrict(body, v)
	}
}

func decodeStrict(body []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %w: empty body", ErrBadRequest, ErrInvalidJSON)
		}
		return fmt.Errorf("%w: %w: %v", ErrBadRequest, ErrInvalidJSON, err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w: unexpected data after JSON object", ErrBadRequest, ErrInvalidJSON)
	}
	return nil
}
