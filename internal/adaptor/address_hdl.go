package adaptor

import (
	"net/http"

	"ecommerce-backend/internal/dto/request"
	"ecommerce-backend/internal/usecase"
	"ecommerce-backend/pkg/utils"

	"go.uber.org/zap"
)

type AddressHandler struct {
	service usecase.AddressService
	log     *zap.Logger
}

func NewAddressHandler(service usecase.AddressService, log *zap.Logger) *AddressHandler {
	return &AddressHandler{
		service: service,
		log:     log.With(zap.String("handler", "address")),
	}
}

// Create handles POST /api/addresses/new
func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req request.AddressRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	address, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create address")
		return
	}

	utils.ResponseSuccess(w, "New Shipping address is added!", address)
}

// Update handles PUT /api/addresses/{addressId}
func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	addressID, ok := pathID(w, r, "addressId")
	if !ok {
		return
	}

	var req request.AddressRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	address, err := h.service.Update(r.Context(), userID, addressID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update address")
		return
	}

	utils.ResponseSuccess(w, "Shipping address is updated!", address)
}

// GetMine handles GET /api/addresses/me
func (h *AddressHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	address, err := h.service.GetMine(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get address")
		return
	}

	utils.ResponseSuccess(w, "Address Found", address)
}

// Delete handles DELETE /api/addresses/{addressId}
func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	addressID, ok := pathID(w, r, "addressId")
	if !ok {
		return
	}

	address, err := h.service.Delete(r.Context(), userID, addressID)
	if err != nil {
		handleServiceError(w, h.log, err, "delete address")
		return
	}

	utils.ResponseSuccess(w, "Shipping address is deleted!", address)
}
