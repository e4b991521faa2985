package adaptor

import (
	"net/http"

	"ecommerce-backend/internal/dto/request"
	"ecommerce-backend/internal/usecase"
	"ecommerce-backend/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetMe handles GET /api/users/me
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	user, err := h.service.GetMe(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get me")
		return
	}

	utils.ResponseSuccess(w, "", user)
}

// UpdateProfileImage handles POST /api/users/profile
func (h *UserHandler) UpdateProfileImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req request.UpdateProfileImageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.service.UpdateProfileImage(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update profile image")
		return
	}

	utils.ResponseSuccess(w, "Profile picture is updated", user)
}

// ChangePassword handles POST /api/users/change-password
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req request.ChangePasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.service.ChangePassword(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "change password")
		return
	}

	utils.ResponseSuccess(w, "Password is changed!", user)
}
