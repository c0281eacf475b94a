package model

import "time"

// Trade is a gift card submitted by a customer for payout.
type Trade struct {
	ID             string     `json:"_id" bson:"_id,omitempty"`
	Status         string     `json:"status" bson:"status"`
	Brand          string     `json:"brand" bson:"brand"`
	Country        *string    `json:"country" bson:"country"`
	CardCurrency   string     `json:"card_currency" bson:"card_currency"`
	Amount         float64    `json:"amount" bson:"amount"`
	Code           *string    `json:"code" bson:"code"`
	Email          string     `json:"email" bson:"email"`
	Phone          *string    `json:"phone" bson:"phone"`
	PayoutCurrency string     `json:"payout_currency" bson:"payout_currency"`
	PayoutMethod   string     `json:"payout_method" bson:"payout_method"`
	PayoutDetails  *string    `json:"payout_details" bson:"payout_details"`
	Notes          *string    `json:"notes" bson:"notes"`
	CreatedAt      *time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at" bson:"updated_at"`
}

// Filter selects trades by exact match. Empty fields are ignored.
type Filter struct {
	Email  string
	Status string
}
