package model

import "fmt"

const (
	ErrCodeCreateUser = "USR001"
	ErrCodeCountUsers = "USR002"
)

type UserError struct {
	Code    string
	Message string
	Err     error
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

func NewCreateError(err error) *UserError {
	return &UserError{Code: ErrCodeCreateUser, Message: "Failed to create user", Err: err}
}

func NewCountError(err error) *UserError {
	return &UserError{Code: ErrCodeCountUsers, Message: "Failed to count users", Err: err}
}
