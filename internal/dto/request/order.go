package request

type PlaceOrderRequest struct {
	Products    []LineItemRequest `json:"products" validate:"required,min=1,dive"`
	Total       *float64          `json:"total" validate:"required,gte=0"`
	Tax         *float64          `json:"tax" validate:"required,gte=0"`
	GrandTotal  *float64          `json:"grandTotal" validate:"required,gte=0"`
	PaymentType string            `json:"paymentType" validate:"required"`
}

type UpdateOrderStatusRequest struct {
	OrderStatus string `json:"orderStatus" validate:"required"`
}
