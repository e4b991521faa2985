package adaptor

import (
	"net/http"

	"ecommerce-backend/internal/dto/request"
	"ecommerce-backend/internal/usecase"
	"ecommerce-backend/pkg/utils"

	"go.uber.org/zap"
)

type CartHandler struct {
	service usecase.CartService
	log     *zap.Logger
}

func NewCartHandler(service usecase.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log.With(zap.String("handler", "cart")),
	}
}

// Create handles POST /api/carts
func (h *CartHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req request.CartRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	cart, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create cart")
		return
	}

	utils.ResponseSuccess(w, "Cart Creation is Success", cart)
}

// GetMine handles GET /api/carts/me. A caller without a cart gets null data.
func (h *CartHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	cart, err := h.service.GetMine(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get cart")
		return
	}

	utils.ResponseSuccess(w, "", cart)
}
