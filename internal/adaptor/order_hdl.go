package adaptor

import (
	"net/http"

	"ecommerce-backend/internal/dto/request"
	"ecommerce-backend/internal/usecase"
	"ecommerce-backend/pkg/utils"

	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "order")),
	}
}

// Place handles POST /api/orders/place
func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req request.PlaceOrderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	order, err := h.service.Place(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "place order")
		return
	}

	utils.ResponseSuccess(w, "Order Creation is Success", order)
}

// GetAll handles GET /api/orders/all?page=&per_page=
func (h *OrderHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	page := request.NewPaginatedRequest(query.Get("page"), query.Get("per_page"))

	orders, err := h.service.GetAll(r.Context(), userID, page)
	if err != nil {
		handleServiceError(w, h.log, err, "get orders")
		return
	}

	utils.ResponseSuccess(w, "", orders)
}

// GetMine handles GET /api/orders/me
func (h *OrderHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	orders, err := h.service.GetMine(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get my orders")
		return
	}

	utils.ResponseSuccess(w, "", orders)
}

// UpdateStatus handles POST /api/orders/{orderId}
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	orderID, ok := pathID(w, r, "orderId")
	if !ok {
		return
	}

	var req request.UpdateOrderStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), userID, orderID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update order status")
		return
	}

	utils.ResponseSuccess(w, "Order Status is Updated!", order)
}
