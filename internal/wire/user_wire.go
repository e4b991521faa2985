package wire

import (
	"net/http"

	"ecommerce-backend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	userHandler *adaptor.UserHandler,
	auth func(http.Handler) http.Handler,
) {
	r.Route("/users", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// ==================== PROTECTED ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Get("/me", userHandler.GetMe)
			r.Post("/profile", userHandler.UpdateProfileImage)
			r.Post("/change-password", userHandler.ChangePassword)
		})
	})
}
