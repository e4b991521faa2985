package usecase

import (
	"ecommerce-backend/internal/dto/request"
	"ecommerce-backend/pkg/utils"

	"github.com/google/uuid"
)

func defaultTestConfig() *utils.Config {
	return &utils.Config{}
}

func ptr[T any](v T) *T { return &v }

func addressRequest(city string) *request.AddressRequest {
	return &request.AddressRequest{
		Mobile: "9999999999", Flat: "12B", Landmark: "park", Street: "main",
		City: city, State: "MH", Country: "IN", PinCode: "411001",
	}
}

func cartRequest(productIDs ...uuid.UUID) *request.CartRequest {
	items := make([]request.LineItemRequest, 0, len(productIDs))
	for _, id := range productIDs {
		items = append(items, request.LineItemRequest{Product: id.String(), Count: 2, Price: ptr(10.0)})
	}
	return &request.CartRequest{Products: items, Total: ptr(20.0), Tax: ptr(2.0), GrandTotal: ptr(22.0)}
}

func orderRequest(productIDs ...uuid.UUID) *request.PlaceOrderRequest {
	cart := cartRequest(productIDs...)
	return &request.PlaceOrderRequest{
		Products: cart.Products, Total: cart.Total, Tax: cart.Tax, GrandTotal: cart.GrandTotal,
		PaymentType: "COD",
	}
}
