package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/cors"
)

// CORSMiddleware allows the comma separated origins. An entry may hold one
// "*" wildcard (e.g. https://*.netlify.app); a lone "*" allows every origin.
func CORSMiddleware(next http.Handler, allowedOrigins string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:       splitOrigins(allowedOrigins),
		AllowedMethods:       []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders:       []string{"Content-Type", "Authorization", RequestIDHeader},
		ExposedHeaders:       []string{RequestIDHeader},
		AllowCredentials:     true,
		OptionsSuccessStatus: http.StatusOK,
	})
	return c.Handler(next)
}

func splitOrigins(allowedOrigins string) []string {
	var origins []string
	for _, o := range strings.Split(allowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
