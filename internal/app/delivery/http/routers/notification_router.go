package routers

import (
	"sinan-service/internal/app/delivery/http/middlewares"
	"sinan-service/internal/app/services/notifications"

	"github.com/go-chi/chi/v5"
)

func attachNotificationRoutes(router chi.Router, middlewares *middlewares.Middlewares, notificationController *notifications.NotificationController) {
	router.Get("/", notificationController.ListNotifications)
	router.Post("/", notificationController.CreateNotification)
	router.Get("/{notification_id}", notificationController.GetNotificationByID)
	router.Put("/{notification_id}", notificationController.UpdateNotificationByID)
	router.Delete("/{notification_id}", notificationController.DeleteNotificationByID)
	router.Post("/{notification_id}/serum", notificationController.RecordSerumAdministration)
}
