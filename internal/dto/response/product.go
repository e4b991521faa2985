package response

import (
	"time"

	"ecommerce-backend/internal/data/entity"
)

// CategoryRef is a category without its subcategories.
type CategoryRef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ProductResponse struct {
	ID            string               `json:"id"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	ImageURL      string               `json:"imageUrl"`
	Brand         string               `json:"brand"`
	Price         float64              `json:"price"`
	Quantity      int                  `json:"quantity"`
	CategoryID    string               `json:"categoryId"`
	SubCategoryID string               `json:"subCategoryId"`
	Category      *CategoryRef         `json:"category,omitempty"`
	SubCategory   *SubCategoryResponse `json:"subCategory,omitempty"`
	User          *UserResponse        `json:"user,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// ProductRelations carries the records a product's foreign keys resolve to.
// Any of them may be nil when the referenced row is gone.
type ProductRelations struct {
	User        *entity.User
	Category    *entity.Category
	SubCategory *entity.SubCategory
}

func ProductToResponse(p *entity.Product, rel ProductRelations) ProductResponse {
	resp := ProductResponse{
		ID:            p.ID.String(),
		Title:         p.Title,
		Description:   p.Description,
		ImageURL:      p.ImageURL,
		Brand:         p.Brand,
		Price:         p.Price,
		Quantity:      p.Quantity,
		CategoryID:    p.CategoryID.String(),
		SubCategoryID: p.SubCategoryID.String(),
		User:          UserRefToResponse(rel.User),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}

	if rel.Category != nil {
		resp.Category = &CategoryRef{
			ID:          rel.Category.ID.String(),
			Name:        rel.Category.Name,
			Description: rel.Category.Description,
		}
	}
	if rel.SubCategory != nil {
		sub := SubCategoryToResponse(rel.SubCategory)
		resp.SubCategory = &sub
	}

	return resp
}

// ProductSummary is the product embedded in cart and order line items.
type ProductSummary struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	ImageURL string  `json:"imageUrl"`
	Brand    string  `json:"brand"`
	Price    float64 `json:"price"`
}

func ProductToSummary(p *entity.Product) *ProductSummary {
	if p == nil {
		return nil
	}
	return &ProductSummary{
		ID:       p.ID.String(),
		Title:    p.Title,
		ImageURL: p.ImageURL,
		Brand:    p.Brand,
		Price:    p.Price,
	}
}
