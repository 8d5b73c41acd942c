// Package signup defines the signup form and its validation rules.
package signup

import (
	"strings"

	"github.com/dmitrymomot/dateinput/pkg/dob"
	"github.com/dmitrymomot/dateinput/pkg/validator"
)

// Field names, shared by form tags, JSON tags and validation errors.
const (
	FieldEmail    = "email"
	FieldUsername = "username"
	FieldDOB      = "dob"
	FieldPassword = "password"
)

// Request is the submitted signup form.
type Request struct {
	Email    string `form:"email" json:"email"`
	Username string `form:"username" json:"username"`
	DOB      string `form:"dob" json:"dob"`
	Password string `form:"password" json:"password"`
}

// Normalize trims the email, username and date of birth. The date is not
// re-masked, so a malformed submission still fails validation. The password is
// left untouched.
func Normalize(req Request) Request {
	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)
	req.DOB = strings.TrimSpace(req.DOB)
	return req
}

// Validate checks every field and returns validator.ValidationErrors with one
// entry per failed field, in form order. A nil v uses the default dob validator.
func Validate(req Request, v *dob.Validator) error {
	if v == nil {
		v = dob.New()
	}
	return validator.Apply(
		validator.ValidEmail(FieldEmail, req.Email).WithMessage("Invalid email address"),
		validator.RequiredString(FieldUsername, req.Username).WithMessage("Username is required"),
		v.Rule(FieldDOB, req.DOB),
		validator.RequiredString(FieldPassword, req.Password).WithMessage("Password is required"),
	)
}
