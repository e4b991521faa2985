package request

// ProductRequest is used for both create and update.
type ProductRequest struct {
	Title         string   `json:"title" validate:"required,max=255"`
	Description   string   `json:"description" validate:"required"`
	ImageURL      string   `json:"imageUrl" validate:"required"`
	Brand         string   `json:"brand" validate:"required,max=100"`
	Price         *float64 `json:"price" validate:"required,gte=0"`
	Quantity      *int     `json:"quantity" validate:"required,gte=0"`
	CategoryID    string   `json:"categoryId" validate:"required,uuid"`
	SubCategoryID string   `json:"subCategoryId" validate:"required,uuid"`
}
