package dob

import "github.com/dmitrymomot/dateinput/pkg/validator"

// Rule adapts the chain into a validator.Rule reported under field.
// The chain runs once, when the rule is built.
func (v *Validator) Rule(field, value string) validator.Rule {
	res := v.Validate(value)
	if field != "" {
		res.field = field
	}
	return validator.Rule{
		Check: res.Valid,
		Error: res.ValidationError(),
	}
}

// Rule builds a rule with the default Validator.
func Rule(field, value string) validator.Rule {
	return std.Rule(field, value)
}
