package binder

import (
	"fmt"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// Signals reads the DataStar signal set into v. DataStar sends signals in the
// "datastar" query parameter for GET requests and as a JSON body otherwise.
// Requests without the Datastar-Request header are not applicable.
//
//	type DOBSignals struct {
//		DOB     string `json:"dob"`
//		DOBPrev string `json:"dobPrev"`
//	}
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.Header.Get("Datastar-Request") != "true" {
			return ErrBinderNotApplicable
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %w: %v", ErrBadRequest, ErrInvalidSignals, err)
		}
		return nil
	}
}
