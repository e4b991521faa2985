package entity

import "github.com/google/uuid"

type Product struct {
	Base
	Title         string    `db:"title"`
	Description   string    `db:"description"`
	ImageURL      string    `db:"image_url"`
	Brand         string    `db:"brand"`
	Price         float64   `db:"price"`
	Quantity      int       `db:"quantity"`
	CategoryID    uuid.UUID `db:"category_id"`
	SubCategoryID uuid.UUID `db:"subcategory_id"`
	UserID        uuid.UUID `db:"user_id"`
}
