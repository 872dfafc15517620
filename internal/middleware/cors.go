package middleware

import (
	"log"
	"net/http"

	"github.com/go-chi/cors"
)

// CORS restricts the ops surface to the configured origins. An empty list
// allows everything, which is only acceptable for local development.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		log.Println("[CORS] no origins configured, allowing all")
		allowedOrigins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
