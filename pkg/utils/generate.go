package utils

import (
	"github.com/google/uuid"
	"github.com/rs/xid"
)

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// GenerateOrderNumber returns a sortable, human-readable order number.
// Format: ORD-<xid>
func GenerateOrderNumber() string {
	return "ORD-" + xid.New().String()
}
