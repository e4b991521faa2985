package entity

import "github.com/google/uuid"

// LineItem is stored inside the products jsonb column of carts and orders.
type LineItem struct {
	ProductID uuid.UUID `json:"product"`
	Count     int       `json:"count"`
	Price     float64   `json:"price"`
}

// Cart totals are computed by the client and stored as given.
type Cart struct {
	Base
	UserID     uuid.UUID  `db:"user_id"`
	Products   []LineItem `db:"products"`
	Total      float64    `db:"total"`
	Tax        float64    `db:"tax"`
	GrandTotal float64    `db:"grand_total"`
}

// ProductIDs returns the distinct product ids referenced by items, in order
// of first appearance.
func ProductIDs(items []LineItem) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(items))
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}
