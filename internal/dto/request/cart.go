package request

type LineItemRequest struct {
	Product string   `json:"product" validate:"required,uuid"`
	Count   int      `json:"count" validate:"gt=0"`
	Price   *float64 `json:"price" validate:"required,gte=0"`
}

// CartRequest totals are computed by the client and stored as sent.
type CartRequest struct {
	Products   []LineItemRequest `json:"products" validate:"required,min=1,dive"`
	Total      *float64          `json:"total" validate:"required,gte=0"`
	Tax        *float64          `json:"tax" validate:"required,gte=0"`
	GrandTotal *float64          `json:"grandTotal" validate:"required,gte=0"`
}
