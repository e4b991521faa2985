package wire

import (
	"net/http"

	"ecommerce-backend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCategory(r chi.Router, h *adaptor.CategoryHandler, auth func(http.Handler) http.Handler) {
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.GetAll)

		r.With(auth).Post("/", h.Create)
		r.With(auth).Post("/{categoryId}", h.CreateSubCategory)
	})
}

func wireProduct(r chi.Router, h *adaptor.ProductHandler, auth func(http.Handler) http.Handler) {
	r.Route("/products", func(r chi.Router) {
		r.Use(auth)

		r.Post("/", h.Create)
		r.Get("/", h.GetAll)
		r.Get("/categories/{categoryId}", h.GetByCategory)
		r.Get("/{productId}", h.GetByID)
		r.Put("/{productId}", h.Update)
		r.Delete("/{productId}", h.Delete)
	})
}
