package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"giftcard-backend/internal/shared"
)

type CreateUserRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	IsVerified *bool   `json:"is_verified"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NotNil.Error("is required")),
		validation.Field(&r.Email,
			validation.Required.Error("is required"),
			is.EmailFormat.Error("must be a valid email address"),
		),
	)
}

func (r CreateUserRequest) ToEntity() *User {
	return &User{
		Name:       shared.StringOr(r.Name, ""),
		Email:      shared.StringOr(r.Email, ""),
		Phone:      r.Phone,
		IsVerified: shared.BoolOr(r.IsVerified, false),
	}
}
