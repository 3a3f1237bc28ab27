package utils

import "github.com/go-playground/validator/v10"

// RequestValidator wires go-playground/validator into Echo so handlers can
// call c.Validate against the validate struct tags on request models.
type RequestValidator struct {
	validator *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validator: validator.New()}
}

func (v *RequestValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}
