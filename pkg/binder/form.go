package binder

import (
	"fmt"
	"net/http"
	"strings"
)

// DefaultMaxMemory is the maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20

// Form binds url-encoded and multipart form values to `form` tagged fields.
// Untagged fields and fields tagged `form:"-"` are left alone.
//
//	type SignupRequest struct {
//		Email string `form:"email"`
//		DOB   string `form:"dob"`
//	}
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		var values map[string][]string

		switch mt := mediaType(r); {
		case mt == "":
			return fmt.Errorf("%w: %w: expected application/x-www-form-urlencoded or multipart/form-data", ErrBadRequest, ErrMissingContentType)
		case mt == "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %w: %v", ErrBadRequest, ErrInvalidForm, err)
			}
			values = r.PostForm
		case strings.HasPrefix(mt, "multipart/form-data"):
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %w: %v", ErrBadRequest, ErrInvalidForm, err)
			}
			values = r.MultipartForm.Value
		default:
			return ErrBinderNotApplicable
		}

		return bindToStruct(v, "form", values, ErrInvalidForm)
	}
}
