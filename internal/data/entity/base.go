package entity

import (
	"time"

	"ecommerce-backend/pkg/utils"

	"github.com/google/uuid"
)

// Base holds the columns every table carries. Nothing in the store is
// soft-deleted, so there is no deleted_at.
type Base struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NewBase stamps a fresh id and matching timestamps.
func NewBase() Base {
	now := time.Now().UTC()
	return Base{ID: utils.GenerateUUID(), CreatedAt: now, UpdatedAt: now}
}
