package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

var defaultCORSOrigins = []string{
	"http://localhost:3000", // local admin UI
}

// CORS returns middleware that applies the allowed origin policy for the
// admin front end. Extra origins come from configuration.
func CORS(origins []string) func(http.Handler) http.Handler {
	allowed := origins
	if len(allowed) == 0 {
		allowed = defaultCORSOrigins
	}
	return cors.New(cors.Options{
		AllowedOrigins:   allowed,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
