package adaptor

import (
	"net/http"

	"ecommerce-backend/internal/dto/request"
	"ecommerce-backend/internal/usecase"
	"ecommerce-backend/pkg/utils"

	"go.uber.org/zap"
)

type CategoryHandler struct {
	service usecase.CategoryService
	log     *zap.Logger
}

func NewCategoryHandler(service usecase.CategoryService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		log:     log.With(zap.String("handler", "category")),
	}
}

// GetAll handles GET /api/categories
func (h *CategoryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetAll(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get categories")
		return
	}

	utils.ResponseSuccess(w, "Categories found", categories)
}

// Create handles POST /api/categories
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req request.CategoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	category, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create category")
		return
	}

	utils.ResponseSuccess(w, "New Category is Created!", category)
}

// CreateSubCategory handles POST /api/categories/{categoryId}
func (h *CategoryHandler) CreateSubCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	categoryID, ok := pathID(w, r, "categoryId")
	if !ok {
		return
	}

	var req request.SubCategoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	category, err := h.service.CreateSubCategory(r.Context(), userID, categoryID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create subcategory")
		return
	}

	utils.ResponseCreated(w, "Sub Category is Created!", category)
}
