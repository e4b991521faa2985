package wire

import (
	"net/http"

	"ecommerce-backend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAddress(r chi.Router, h *adaptor.AddressHandler, auth func(http.Handler) http.Handler) {
	r.Route("/addresses", func(r chi.Router) {
		r.Use(auth)

		r.Post("/new", h.Create)
		r.Get("/me", h.GetMine)
		r.Put("/{addressId}", h.Update)
		r.Delete("/{addressId}", h.Delete)
	})
}

func wireCart(r chi.Router, h *adaptor.CartHandler, auth func(http.Handler) http.Handler) {
	r.Route("/carts", func(r chi.Router) {
		r.Use(auth)

		r.Post("/", h.Create)
		r.Get("/me", h.GetMine)
	})
}

func wireOrder(r chi.Router, h *adaptor.OrderHandler, auth func(http.Handler) http.Handler) {
	r.Route("/orders", func(r chi.Router) {
		r.Use(auth)

		r.Post("/place", h.Place)
		r.Get("/all", h.GetAll)
		r.Get("/me", h.GetMine)
		r.Post("/{orderId}", h.UpdateStatus)
	})
}
