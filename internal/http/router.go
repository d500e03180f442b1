package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/prisha-enterprises/backoffice/docs"
	"github.com/prisha-enterprises/backoffice/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	// Public surface consumed by the marketing site.
	r.Post("/login", handlers.LoginHandler)
	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)
	r.Get("/products/slug/{slug}", handlers.GetProductBySlugHandler)
	r.With(ThrottleInquiries).Post("/inquiries", handlers.CreateInquiryHandler)
	r.Get("/settings", handlers.GetSettingsHandler)

	// Back-office surface.
	r.Group(func(r chi.Router) {
		r.Use(RequireAdmin)
		r.Post("/products", handlers.CreateProductHandler)
		r.Patch("/products/{id}", handlers.UpdateProductHandler)
		r.Delete("/products/{id}", handlers.DeleteProductHandler)
		r.Get("/inquiries", handlers.ListInquiriesHandler)
		r.Patch("/inquiries/{id}/status", handlers.UpdateInquiryStatusHandler)
		r.Delete("/inquiries/{id}", handlers.DeleteInquiryHandler)
		r.Put("/settings", handlers.UpsertSettingsHandler)
		r.Post("/auth/change-password", handlers.ChangePasswordHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
