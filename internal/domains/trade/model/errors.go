package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeInvalidID   = "TRD001"
	ErrCodeCreateTrade = "TRD002"
	ErrCodeListTrades  = "TRD003"
	ErrCodeUpdateTrade = "TRD004"
	ErrCodeCountTrades = "TRD005"
)

var ErrInvalidTradeID = errors.New("invalid trade id")

// TradeError wraps a storage failure with a stable code.
type TradeError struct {
	Code    string
	Message string
	Err     error
}

func (e *TradeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *TradeError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewInvalidIDError(id string) *TradeError {
	return &TradeError{
		Code:    ErrCodeInvalidID,
		Message: fmt.Sprintf("Invalid trade ID: %s", id),
		Err:     ErrInvalidTradeID,
	}
}

func NewCreateError(err error) *TradeError {
	return &TradeError{Code: ErrCodeCreateTrade, Message: "Failed to create trade", Err: err}
}

func NewListError(err error) *TradeError {
	return &TradeError{Code: ErrCodeListTrades, Message: "Failed to list trades", Err: err}
}

func NewUpdateError(err error) *TradeError {
	return &TradeError{Code: ErrCodeUpdateTrade, Message: "Failed to update trade", Err: err}
}

func NewCountError(err error) *TradeError {
	return &TradeError{Code: ErrCodeCountTrades, Message: "Failed to count trades", Err: err}
}
