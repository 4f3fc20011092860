package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// AllowCors wraps the whole API handler so that preflight requests are
// answered before routing.
func AllowCors(origins []string, debug bool) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		Debug:          debug,
	}).Handler
}
