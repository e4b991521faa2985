package response

import (
	"time"

	"ecommerce-backend/internal/data/entity"

	"github.com/google/uuid"
)

type LineItemResponse struct {
	ProductID string          `json:"productId"`
	Product   *ProductSummary `json:"product"`
	Count     int             `json:"count"`
	Price     float64         `json:"price"`
}

type CartResponse struct {
	ID         string             `json:"id"`
	Products   []LineItemResponse `json:"products"`
	Total      float64            `json:"total"`
	Tax        float64            `json:"tax"`
	GrandTotal float64            `json:"grandTotal"`
	User       *UserResponse      `json:"user"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// LineItemsToResponse expands each item with the product found in products.
// Items whose product no longer exists keep their id and a null product.
func LineItemsToResponse(items []entity.LineItem, products map[uuid.UUID]*entity.Product) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, LineItemResponse{
			ProductID: item.ProductID.String(),
			Product:   ProductToSummary(products[item.ProductID]),
			Count:     item.Count,
			Price:     item.Price,
		})
	}
	return out
}

func CartToResponse(c *entity.Cart, user *entity.User, products map[uuid.UUID]*entity.Product) CartResponse {
	return CartResponse{
		ID:         c.ID.String(),
		Products:   LineItemsToResponse(c.Products, products),
		Total:      c.Total,
		Tax:        c.Tax,
		GrandTotal: c.GrandTotal,
		User:       UserRefToResponse(user),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
