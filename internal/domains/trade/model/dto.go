package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"giftcard-backend/internal/shared"
	"giftcard-backend/internal/shared/utils"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// CreateTradeRequest is the public trade submission. Pointer fields separate
// "omitted" from a present zero value.
type CreateTradeRequest struct {
	Status         *string  `json:"status"`
	Brand          *string  `json:"brand"`
	Country        *string  `json:"country"`
	CardCurrency   *string  `json:"card_currency"`
	Amount         *float64 `json:"amount"`
	Code           *string  `json:"code"`
	Email          *string  `json:"email"`
	Phone          *string  `json:"phone"`
	PayoutCurrency *string  `json:"payout_currency"`
	PayoutMethod   *string  `json:"payout_method"`
	PayoutDetails  *string  `json:"payout_details"`
	Notes          *string  `json:"notes"`
}

func (r CreateTradeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.NilOrNotEmpty, validation.In(Statuses...)),
		validation.Field(&r.Brand, validation.NotNil.Error("is required")),
		validation.Field(&r.CardCurrency,
			validation.Required.Error("is required"),
			validation.In(shared.CardCurrencies...),
		),
		validation.Field(&r.Amount, validation.NotNil.Error("is required"), utils.Positive),
		validation.Field(&r.Email,
			validation.Required.Error("is required"),
			is.EmailFormat.Error("must be a valid email address"),
		),
		validation.Field(&r.PayoutCurrency, validation.NilOrNotEmpty, validation.In(shared.SettlementCurrencies...)),
		validation.Field(&r.PayoutMethod, validation.NilOrNotEmpty, validation.In(PayoutMethods...)),
	)
}

// ToEntity applies defaults. Call only after Validate succeeded.
func (r CreateTradeRequest) ToEntity() *Trade {
	return &Trade{
		Status:         shared.StringOr(r.Status, StatusPending),
		Brand:          shared.StringOr(r.Brand, ""),
		Country:        r.Country,
		CardCurrency:   shared.StringOr(r.CardCurrency, ""),
		Amount:         *r.Amount,
		Code:           r.Code,
		Email:          shared.StringOr(r.Email, ""),
		Phone:          r.Phone,
		PayoutCurrency: shared.StringOr(r.PayoutCurrency, DefaultPayoutCurrency),
		PayoutMethod:   shared.StringOr(r.PayoutMethod, PayoutBank),
		PayoutDetails:  r.PayoutDetails,
		Notes:          r.Notes,
	}
}

// UpdateTradeRequest is the admin partial update. Nil fields are left untouched.
type UpdateTradeRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

func (r UpdateTradeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.NilOrNotEmpty, validation.In(Statuses...)),
	)
}

// IsEmpty reports whether the request carries no change.
func (r UpdateTradeRequest) IsEmpty() bool {
	return r.Status == nil && r.Notes == nil
}

// ListTradesRequest is the public listing query.
type ListTradesRequest struct {
	Email  string `form:"email"`
	Status string `form:"status" binding:"omitempty,oneof=pending review approved rejected paid"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=1000"`
}

// AdminListTradesRequest is the admin listing query.
type AdminListTradesRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=pending review approved rejected paid"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=1000"`
}

// =====================================================
// RESPONSE DTOs
// =====================================================

type CreateTradeResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
