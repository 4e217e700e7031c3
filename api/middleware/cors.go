package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/benjaminbelloeil/portfolio-api/pkg/config"
)

// CORS applies the storefront origin policy. Origins come from config so
// preview deployments can be added without a code change.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler
}
