package model

import (
	_ "embed"

	"giftcard-backend/internal/shared/schema"
)

//go:embed entity.go
var entitySource string

func Schema() string {
	return schema.Extract(entitySource, "Rate")
}
