package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"ecommerce-backend/internal/usecase"
	"ecommerce-backend/pkg/apperror"
	"ecommerce-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	MessageInvalidBody   = "Invalid request body"
	MessageInvalidCaller = "Unauthorized!, its an invalid token"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Category *CategoryHandler
	Product  *ProductHandler
	Address  *AddressHandler
	Cart     *CartHandler
	Order    *OrderHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Category: NewCategoryHandler(service.Category, log),
		Product:  NewProductHandler(service.Product, log),
		Address:  NewAddressHandler(service.Address, log),
		Cart:     NewCartHandler(service.Cart, log),
		Order:    NewOrderHandler(service.Order, log),
	}
}

// decodeAndValidate reads the JSON body into dst and runs its validate
// tags. On failure the 400 response is already written and false is
// returned.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, MessageInvalidBody)
		return false
	}

	if validationErrors := utils.ValidateStruct(dst); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors))
		return false
	}
	return true
}

// pathID parses a uuid route parameter, answering 400 when it is malformed.
func pathID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := utils.ParseUUID(chi.URLParam(r, param))
	if err != nil {
		utils.ResponseBadRequest(w, param+" must be a valid id")
		return uuid.Nil, false
	}
	return id, true
}

// callerID reads the user id put in the context by the auth middleware.
func callerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, MessageInvalidCaller)
		return uuid.Nil, false
	}
	return id, true
}

// handleServiceError maps usecase errors to status codes. Anything that is
// not an apperror is logged and hidden behind the generic server error.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	message := apperror.Message(err, utils.MessageServerError)

	switch {
	case errors.Is(err, apperror.ErrValidation):
		log.Debug(operation+" validation failed", zap.String("reason", message))
		utils.ResponseBadRequest(w, message)

	case errors.Is(err, apperror.ErrUnauthenticated):
		log.Warn(operation+" failed - unauthenticated", zap.String("reason", message))
		utils.ResponseUnauthorized(w, message)

	case errors.Is(err, apperror.ErrNotFound):
		log.Info(operation+" failed - not found", zap.String("reason", message))
		utils.ResponseNotFound(w, message)

	case errors.Is(err, apperror.ErrConflict):
		log.Info(operation+" failed - conflict", zap.String("reason", message))
		utils.ResponseConflict(w, message)

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w)
	}
}
