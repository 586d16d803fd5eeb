package router

import (
	"net/http"

	"inventory-api/internal/handler"
	"inventory-api/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	healthHandler *handler.HealthHandler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", healthHandler.Check)

	mux.HandleFunc("GET /products", productHandler.List)
	mux.HandleFunc("POST /products", productHandler.Create)
	mux.HandleFunc("GET /products/{id}", productHandler.Get)
	mux.HandleFunc("PUT /products/{id}", productHandler.Update)
	mux.HandleFunc("PATCH /products/{id}", productHandler.Update)
	mux.HandleFunc("DELETE /products/{id}", productHandler.Delete)

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID(h)
	h = middleware.Recovery(logger)(h)

	return h
}
