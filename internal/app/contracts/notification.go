package contracts

import (
	"context"
	"sinan-service/internal/app/models"
	"sinan-service/internal/pkg/dto/requests"
	"sinan-service/internal/pkg/dto/responses"
)

type NotificationRepository interface {
	Insert(ctx context.Context, record *models.NotificationRecord) (int64, error)
	FindAll(ctx context.Context) ([]models.NotificationRecord, error)
	// FindByID returns (nil, nil) when no row matches.
	FindByID(ctx context.Context, notificationID int64) (*models.NotificationRecord, error)
	Update(ctx context.Context, record *models.NotificationRecord) error
	// Delete succeeds whether or not the row exists.
	Delete(ctx context.Context, notificationID int64) error
}

type NotificationUsecase interface {
	ListNotifications(ctx context.Context) ([]responses.Notification, error)
	GetNotificationByID(ctx context.Context, notificationID int64) (*responses.Notification, error)
	CreateNotification(ctx context.Context, request *requests.SaveNotification) (int64, error)
	UpdateNotificationByID(ctx context.Context, notificationID int64, request *requests.SaveNotification) error
	DeleteNotificationByID(ctx context.Context, notificationID int64) error
	RecordSerumAdministration(ctx context.Context, notificationID int64, request *requests.SerumAdministration) error
}
