package signup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/dateinput/pkg/signup"
)

// Views renders the module's HTML. Any nil view falls back to the default.
type Views struct {
	Page       func(PageParams) templ.Component
	FieldError func(FieldErrorParams) templ.Component
	Success    func(SuccessParams) templ.Component
}

// PageParams contains data for rendering the signup page.
type PageParams struct {
	BasePath string
	Request  signup.Request
	Errors   map[string]string
}

// FieldErrorParams contains data for rendering one field's error slot.
type FieldErrorParams struct {
	Field   string
	Message string
}

// SuccessParams contains data for rendering the signup confirmation.
type SuccessParams struct {
	Username string
}

// DefaultViews returns the built-in views.
func DefaultViews() *Views {
	return &Views{
		Page:       defaultPage,
		FieldError: defaultFieldError,
		Success:    defaultSuccess,
	}
}

func (v *Views) withDefaults() *Views {
	out := DefaultViews()
	if v == nil {
		return out
	}
	if v.Page != nil {
		out.Page = v.Page
	}
	if v.FieldError != nil {
		out.FieldError = v.FieldError
	}
	if v.Success != nil {
		out.Success = v.Success
	}
	return out
}

// ErrorID returns the element id of a field's error slot.
func ErrorID(field string) string {
	return field + "-error"
}

func defaultFieldError(p FieldErrorParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<p id="%s" class="field-error">%s</p>`,
			templ.EscapeString(ErrorID(p.Field)), templ.EscapeString(p.Message))
		return err
	})
}

func defaultSuccess(p SuccessParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div id="signup" role="dialog"><h2>Signup Done</h2><p>Welcome, %s.</p></div>`,
			templ.EscapeString(p.Username))
		return err
	})
}

func defaultPage(p PageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		esc := func(s string) string { return templ.EscapeString(s) }
		field := func(name, label, kind, value string) error {
			if _, err := fmt.Fprintf(w,
				`<label for="%[1]s">%[2]s</label><input id="%[1]s" name="%[1]s" type="%[3]s" value="%[4]s">`,
				esc(name), esc(label), esc(kind), esc(value)); err != nil {
				return err
			}
			return defaultFieldError(FieldErrorParams{Field: name, Message: p.Errors[name]}).Render(ctx, w)
		}

		if _, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>Signup</title>`+
			`<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"></script>`+
			`</head><body><div id="signup"><h2>Signup</h2>`+
			`<form method="post" action="%[1]s/signup" data-on:submit__prevent="@post('%[1]s/signup', {contentType: 'form'})">`,
			esc(p.BasePath)); err != nil {
			return err
		}
		if err := field(signup.FieldEmail, "Email", "email", p.Request.Email); err != nil {
			return err
		}
		if err := field(signup.FieldUsername, "Username", "text", p.Request.Username); err != nil {
			return err
		}

		signals, err := json.Marshal(DOBSignals{DOB: p.Request.DOB, DOBPrev: p.Request.DOB})
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w,
			`<label for="dob">Date of Birth</label>`+
				`<div data-signals="%[3]s">`+
				`<input id="dob" name="dob" type="text" inputmode="numeric" placeholder="MM/DD/YYYY" value="%[2]s" `+
				`data-bind:dob data-on:input="@post('%[1]s/dob')"></div>`,
			esc(p.BasePath), esc(p.Request.DOB), esc(string(signals))); err != nil {
			return err
		}
		if err := defaultFieldError(FieldErrorParams{Field: signup.FieldDOB, Message: p.Errors[signup.FieldDOB]}).Render(ctx, w); err != nil {
			return err
		}

		if err := field(signup.FieldPassword, "Password", "password", ""); err != nil {
			return err
		}
		_, err = io.WriteString(w, `<button type="submit">Sign Up</button></form></div></body></html>`)
		return err
	})
}
