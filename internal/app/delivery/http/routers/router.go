package routers

import (
	"fmt"
	"sinan-service/internal/app/config"
	"sinan-service/internal/app/delivery/http/middlewares"
	"sinan-service/internal/app/services/notifications"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	notificationController *notifications.NotificationController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.BodyLimit)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route("/notifications", func(r chi.Router) {
			attachNotificationRoutes(r, middlewares, notificationController)
		})
	})

	attachStaticRoutes(router, internalConfig)
}
