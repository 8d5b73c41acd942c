// Package validator provides small, composable validation rules.
//
// A Rule pairs a boolean Check with translation-friendly error metadata.
// Apply evaluates every rule and aggregates failures into ValidationErrors,
// which satisfies the error interface.
//
// # Usage
//
//	err := validator.Apply(
//		validator.ValidEmail("email", req.Email).WithMessage("Invalid email address"),
//		validator.RequiredString("username", req.Username),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		for _, field := range verrs.Fields() {
//			fmt.Println(field, verrs.Get(field))
//		}
//	}
//
// Rules hold no global state, so the package is goroutine-safe.
package validator
