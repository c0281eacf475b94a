package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeInvalidID      = "GFC001"
	ErrCodeCreateGiftcard = "GFC002"
	ErrCodeListGiftcards  = "GFC003"
	ErrCodeUpdateGiftcard = "GFC004"
	ErrCodeCountGiftcards = "GFC005"
)

var ErrInvalidGiftcardID = errors.New("invalid giftcard id")

type GiftcardError struct {
	Code    string
	Message string
	Err     error
}

func (e *GiftcardError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *GiftcardError) Unwrap() error {
	return e.Err
}

func NewInvalidIDError(id string) *GiftcardError {
	return &GiftcardError{
		Code:    ErrCodeInvalidID,
		Message: fmt.Sprintf("Invalid giftcard ID: %s", id),
		Err:     ErrInvalidGiftcardID,
	}
}

func NewCreateError(err error) *GiftcardError {
	return &GiftcardError{Code: ErrCodeCreateGiftcard, Message: "Failed to create giftcard", Err: err}
}

func NewListError(err error) *GiftcardError {
	return &GiftcardError{Code: ErrCodeListGiftcards, Message: "Failed to list giftcards", Err: err}
}

func NewUpdateError(err error) *GiftcardError {
	return &GiftcardError{Code: ErrCodeUpdateGiftcard, Message: "Failed to update giftcard", Err: err}
}

func NewCountError(err error) *GiftcardError {
	return &GiftcardError{Code: ErrCodeCountGiftcards, Message: "Failed to count giftcards", Err: err}
}
