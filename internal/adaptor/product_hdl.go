package adaptor

import (
	"net/http"

	"ecommerce-backend/internal/dto/request"
	"ecommerce-backend/internal/usecase"
	"ecommerce-backend/pkg/utils"

	"go.uber.org/zap"
)

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log.With(zap.String("handler", "product")),
	}
}

// Create handles POST /api/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req request.ProductRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	product, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create product")
		return
	}

	utils.ResponseSuccess(w, "Product is Created Successfully!", product)
}

// Update handles PUT /api/products/{productId}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	productID, ok := pathID(w, r, "productId")
	if !ok {
		return
	}

	var req request.ProductRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	product, err := h.service.Update(r.Context(), userID, productID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update product")
		return
	}

	utils.ResponseSuccess(w, "Product is Updated Successfully!", product)
}

// GetAll handles GET /api/products?page=&per_page=
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	page := request.NewPaginatedRequest(query.Get("page"), query.Get("per_page"))

	products, err := h.service.GetAll(r.Context(), userID, page)
	if err != nil {
		handleServiceError(w, h.log, err, "get products")
		return
	}

	utils.ResponseSuccess(w, "", products)
}

// GetByID handles GET /api/products/{productId}
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	productID, ok := pathID(w, r, "productId")
	if !ok {
		return
	}

	product, err := h.service.GetByID(r.Context(), userID, productID)
	if err != nil {
		handleServiceError(w, h.log, err, "get product")
		return
	}

	utils.ResponseSuccess(w, "", product)
}

// Delete handles DELETE /api/products/{productId}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	productID, ok := pathID(w, r, "productId")
	if !ok {
		return
	}

	product, err := h.service.Delete(r.Context(), userID, productID)
	if err != nil {
		handleServiceError(w, h.log, err, "delete product")
		return
	}

	utils.ResponseSuccess(w, "The Product is deleted!", product)
}

// GetByCategory handles GET /api/products/categories/{categoryId}
func (h *ProductHandler) GetByCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	categoryID, ok := pathID(w, r, "categoryId")
	if !ok {
		return
	}

	products, err := h.service.GetByCategory(r.Context(), userID, categoryID)
	if err != nil {
		handleServiceError(w, h.log, err, "get products by category")
		return
	}

	utils.ResponseSuccess(w, "", products)
}
