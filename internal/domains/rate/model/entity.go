package model

import "time"

// Rate is the price offered per unit of card currency for a brand.
type Rate struct {
	ID        string     `json:"_id" bson:"_id,omitempty"`
	Brand     string     `json:"brand" bson:"brand"`
	Country   *string    `json:"country" bson:"country"`
	Currency  string     `json:"currency" bson:"currency"`
	Buy       float64    `json:"buy" bson:"buy"`
	Sell      *float64   `json:"sell" bson:"sell"`
	IsActive  bool       `json:"is_active" bson:"is_active"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// Filter selects rates by exact match. Empty strings are ignored.
type Filter struct {
	Brand      string
	Country    string
	ActiveOnly bool
}
