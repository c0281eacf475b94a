package model

import "time"

// Giftcard is a tradable gift card brand.
type Giftcard struct {
	ID        string     `json:"_id" bson:"_id,omitempty"`
	Brand     string     `json:"brand" bson:"brand"`
	Country   *string    `json:"country" bson:"country"`
	Notes     *string    `json:"notes" bson:"notes"`
	IsActive  bool       `json:"is_active" bson:"is_active"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// Filter selects giftcards. ActiveOnly restricts to is_active = true.
type Filter struct {
	ActiveOnly bool
}
