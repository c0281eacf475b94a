package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeInvalidID  = "RTE001"
	ErrCodeCreateRate = "RTE002"
	ErrCodeListRates  = "RTE003"
	ErrCodeUpdateRate = "RTE004"
	ErrCodeCountRates = "RTE005"
)

var ErrInvalidRateID = errors.New("invalid rate id")

// RateError wraps a storage failure with a stable code.
type RateError struct {
	Code    string
	Message string
	Err     error
}

func (e *RateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *RateError) Unwrap() error {
	return e.Err
}

func NewInvalidIDError(id string) *RateError {
	return &RateError{
		Code:    ErrCodeInvalidID,
		Message: fmt.Sprintf("Invalid rate ID: %s", id),
		Err:     ErrInvalidRateID,
	}
}

func NewCreateError(err error) *RateError {
	return &RateError{Code: ErrCodeCreateRate, Message: "Failed to create rate", Err: err}
}

func NewListError(err error) *RateError {
	return &RateError{Code: ErrCodeListRates, Message: "Failed to list rates", Err: err}
}

func NewUpdateError(err error) *RateError {
	return &RateError{Code: ErrCodeUpdateRate, Message: "Failed to update rate", Err: err}
}

func NewCountError(err error) *RateError {
	return &RateError{Code: ErrCodeCountRates, Message: "Failed to count rates", Err: err}
}
