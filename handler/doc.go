// Package handler turns typed request handlers into http.HandlerFunc values.
//
// A handler receives a Context and a bound request struct and returns a
// Response that renders itself:
//
//	http.HandleFunc("/dob/validate", handler.Wrap(
//		func(ctx handler.Context, req ValidateRequest) handler.Response {
//			res := v.Validate(req.Value)
//			return handler.JSON(res)
//		},
//		handler.WithBinders[ValidateRequest](binder.JSON()),
//	))
//
// Responses adapt to the caller: Templ and Signals stream Server-Sent Events to
// DataStar clients and fall back to HTML or JSON for plain requests. Errors are
// mapped to status codes by JSONError: validator.ValidationErrors become 422
// with per-field details, HTTPError keeps its code, anything else is a 500.
package handler
