package model

import (
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"giftcard-backend/internal/shared"
)

// CreateGiftcardRequest is the admin payload for a new brand.
type CreateGiftcardRequest struct {
	Brand    *string `json:"brand"`
	Country  *string `json:"country"`
	Notes    *string `json:"notes"`
	IsActive *bool   `json:"is_active"`
}

func (r CreateGiftcardRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Brand, validation.NotNil.Error("is required")),
	)
}

func (r CreateGiftcardRequest) ToEntity() *Giftcard {
	return &Giftcard{
		Brand:    shared.StringOr(r.Brand, ""),
		Country:  r.Country,
		Notes:    r.Notes,
		IsActive: shared.BoolOr(r.IsActive, true),
	}
}

// UpdateGiftcardRequest is a partial update; nil fields are left untouched.
type UpdateGiftcardRequest struct {
	Brand    *string `json:"brand"`
	Country  *string `json:"country"`
	Notes    *string `json:"notes"`
	IsActive *bool   `json:"is_active"`
}

func (r UpdateGiftcardRequest) IsEmpty() bool {
	return r.Brand == nil && r.Country == nil && r.Notes == nil && r.IsActive == nil
}

// AdminListGiftcardsRequest is the admin listing query.
type AdminListGiftcardsRequest struct {
	IncludeInactive *bool `form:"include_inactive"`
	Limit           int   `form:"limit" binding:"omitempty,min=1,max=1000"`
}

// Filter translates the query, including inactive brands unless told otherwise.
func (r AdminListGiftcardsRequest) Filter() Filter {
	return Filter{ActiveOnly: !shared.BoolOr(r.IncludeInactive, true)}
}

type CreateGiftcardResponse struct {
	ID string `json:"id"`
}

// UniqueBrands returns the distinct non-empty brand names, sorted.
func UniqueBrands(cards []Giftcard) []string {
	seen := make(map[string]struct{}, len(cards))
	brands := make([]string, 0, len(cards))
	for _, card := range cards {
		if card.Brand == "" {
			continue
		}
		if _, ok := seen[card.Brand]; ok {
			continue
		}
		seen[card.Brand] = struct{}{}
		brands = append(brands, card.Brand)
	}
	sort.Strings(brands)
	return brands
}
