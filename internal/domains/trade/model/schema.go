package model

import (
	_ "embed"

	"giftcard-backend/internal/shared/schema"
)

//go:embed entity.go
var entitySource string

// Schema returns the declaration of Trade as written in entity.go.
func Schema() string {
	return schema.Extract(entitySource, "Trade")
}
