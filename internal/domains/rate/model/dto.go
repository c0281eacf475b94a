package model

import (
	"fmt"
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"giftcard-backend/internal/shared"
	"giftcard-backend/internal/shared/utils"
)

const DefaultCurrency = "USD"

// CreateRateRequest is the admin payload for a new rate.
type CreateRateRequest struct {
	Brand    *string  `json:"brand"`
	Country  *string  `json:"country"`
	Currency *string  `json:"currency"`
	Buy      *float64 `json:"buy"`
	Sell     *float64 `json:"sell"`
	IsActive *bool    `json:"is_active"`
}

func (r CreateRateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Brand, validation.NotNil.Error("is required")),
		validation.Field(&r.Currency, validation.NilOrNotEmpty, validation.In(shared.SettlementCurrencies...)),
		validation.Field(&r.Buy, validation.NotNil.Error("is required"), utils.Positive),
		validation.Field(&r.Sell, utils.Positive),
	)
}

func (r CreateRateRequest) ToEntity() *Rate {
	return &Rate{
		Brand:    shared.StringOr(r.Brand, ""),
		Country:  r.Country,
		Currency: shared.StringOr(r.Currency, DefaultCurrency),
		Buy:      *r.Buy,
		Sell:     r.Sell,
		IsActive: shared.BoolOr(r.IsActive, true),
	}
}

// UpdateRateRequest is a partial update; nil fields are left untouched.
type UpdateRateRequest struct {
	Brand    *string  `json:"brand"`
	Country  *string  `json:"country"`
	Currency *string  `json:"currency"`
	Buy      *float64 `json:"buy"`
	Sell     *float64 `json:"sell"`
	IsActive *bool    `json:"is_active"`
}

func (r UpdateRateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Currency, validation.NilOrNotEmpty, validation.In(shared.SettlementCurrencies...)),
		validation.Field(&r.Buy, utils.Positive),
		validation.Field(&r.Sell, utils.Positive),
	)
}

func (r UpdateRateRequest) IsEmpty() bool {
	return r.Brand == nil && r.Country == nil && r.Currency == nil &&
		r.Buy == nil && r.Sell == nil && r.IsActive == nil
}

// ListRatesRequest is the public listing query.
type ListRatesRequest struct {
	Brand   string `form:"brand"`
	Country string `form:"country"`
}

// CacheKey identifies the cached result for this query. Both parts are
// escaped so a ':' inside a brand or country cannot shift the separator.
func (r ListRatesRequest) CacheKey() string {
	return fmt.Sprintf("%s%s:%s", ActiveRatesCachePrefix, url.QueryEscape(r.Brand), url.QueryEscape(r.Country))
}

// AdminListRatesRequest is the admin listing query.
type AdminListRatesRequest struct {
	Brand           string `form:"brand"`
	IncludeInactive *bool  `form:"include_inactive"`
	Limit           int    `form:"limit" binding:"omitempty,min=1,max=1000"`
}

func (r AdminListRatesRequest) Filter() Filter {
	return Filter{
		Brand:      r.Brand,
		ActiveOnly: !shared.BoolOr(r.IncludeInactive, true),
	}
}

type CreateRateResponse struct {
	ID string `json:"id"`
}

// Cache keys for public rate listings.
const (
	ActiveRatesCachePrefix  = "rates:active:"
	ActiveRatesCachePattern = ActiveRatesCachePrefix + "*"
)
