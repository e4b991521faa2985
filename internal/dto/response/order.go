package response

import (
	"time"

	"ecommerce-backend/internal/data/entity"

	"github.com/google/uuid"
)

type OrderResponse struct {
	ID          string             `json:"id"`
	OrderNumber string             `json:"orderNumber"`
	Products    []LineItemResponse `json:"products"`
	Total       float64            `json:"total"`
	Tax         float64            `json:"tax"`
	GrandTotal  float64            `json:"grandTotal"`
	PaymentType string             `json:"paymentType"`
	OrderStatus string             `json:"orderStatus"`
	OrderBy     *UserResponse      `json:"orderBy"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

func OrderToResponse(o *entity.Order, user *entity.User, products map[uuid.UUID]*entity.Product) OrderResponse {
	return OrderResponse{
		ID:          o.ID.String(),
		OrderNumber: o.OrderNumber,
		Products:    LineItemsToResponse(o.Products, products),
		Total:       o.Total,
		Tax:         o.Tax,
		GrandTotal:  o.GrandTotal,
		PaymentType: o.PaymentType,
		OrderStatus: string(o.OrderStatus),
		OrderBy:     UserRefToResponse(user),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
