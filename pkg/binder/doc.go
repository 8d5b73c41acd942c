// Package binder decodes HTTP requests into tagged structs.
//
// Each binder is a func(r *http.Request, v any) error that handles one source:
//
//   - Form binds application/x-www-form-urlencoded and multipart/form-data
//     values using `form:"name"` tags.
//   - JSON decodes an application/json body strictly (unknown fields fail).
//   - Signals reads the DataStar signal set from the query (GET) or body.
//
// A binder returns ErrBinderNotApplicable when the request is not its kind,
// so handler.Wrap can try several binders in order. Every other failure wraps
// ErrBadRequest.
package binder
