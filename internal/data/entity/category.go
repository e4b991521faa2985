package entity

import "github.com/google/uuid"

type Category struct {
	Base
	Name          string `db:"name"`
	Description   string `db:"description"`
	SubCategories []SubCategory
}

// SubCategory names are unique across every category.
type SubCategory struct {
	Base
	CategoryID  uuid.UUID `db:"category_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Position    int       `db:"position"`
}
