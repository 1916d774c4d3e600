package middleware

import (
	"bubblebrew_server/config"

	"github.com/rs/cors"
)

func (mw *Middleware) SetupCORS() *cors.Cors {
	cfg := config.GetConfig()
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   cfg.Cors.AllowOrigins,
		AllowedMethods:   cfg.Cors.AllowMethods,
		AllowedHeaders:   cfg.Cors.AllowHeaders,
		ExposedHeaders:   cfg.Cors.ExposedHeaders,
		AllowCredentials: cfg.Cors.AllowCredentials,
	})

	return corsMiddleware
}
