package utils

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var errNotPositive = validation.NewError("validation_positive", "must be greater than 0")

// Positive rejects numbers <= 0. Unlike validation.Min it does not treat zero
// as "empty", so a present 0 fails. Nil pointers pass; pair with NotNil when required.
var Positive = validation.By(func(value interface{}) error {
	v, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}

	switch n := v.(type) {
	case float64:
		if n > 0 {
			return nil
		}
	case float32:
		if n > 0 {
			return nil
		}
	case int:
		if n > 0 {
			return nil
		}
	case int64:
		if n > 0 {
			return nil
		}
	default:
		return validation.NewError("validation_not_number", "must be a number")
	}
	return errNotPositive
})
