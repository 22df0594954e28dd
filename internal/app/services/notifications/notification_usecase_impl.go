package notifications

import (
	"context"
	"errors"
	"sinan-service/internal/app/contracts"
	"sinan-service/internal/app/models"
	"sinan-service/internal/pkg/constvars"
	"sinan-service/internal/pkg/dto/requests"
	"sinan-service/internal/pkg/dto/responses"
	"sinan-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

type notificationUsecase struct {
	NotificationRepository contracts.NotificationRepository
	Log                    *zap.Logger
}

var (
	notificationUsecaseInstance contracts.NotificationUsecase
	onceNotificationUsecase     sync.Once
)

func NewNotificationUsecase(
	notificationRepository contracts.NotificationRepository,
	logger *zap.Logger,
) contracts.NotificationUsecase {
	onceNotificationUsecase.Do(func() {
		instance := &notificationUsecase{
			NotificationRepository: notificationRepository,
			Log:                    logger,
		}
		notificationUsecaseInstance = instance
	})
	return notificationUsecaseInstance
}

func (uc *notificationUsecase) ListNotifications(ctx context.Context) ([]responses.Notification, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.ListNotifications called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	records, err := uc.NotificationRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("notificationUsecase.ListNotifications error fetching records",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	now := time.Now()
	response := make([]responses.Notification, len(records))
	for i, record := range records {
		response[i] = convertIntoResponse(record, now)
	}

	uc.Log.Info("notificationUsecase.ListNotifications succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRecordsCountKey, len(response)),
	)
	return response, nil
}

func (uc *notificationUsecase) GetNotificationByID(ctx context.Context, notificationID int64) (*responses.Notification, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.GetNotificationByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingNotificationIDKey, notificationID),
	)

	record, err := uc.NotificationRepository.FindByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrNotificationNotFound(nil)
	}

	response := convertIntoResponse(*record, time.Now())
	return &response, nil
}

func (uc *notificationUsecase) CreateNotification(ctx context.Context, request *requests.SaveNotification) (int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	record := buildRecord(request)
	uc.Log.Info("notificationUsecase.CreateNotification called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStatusKey, string(record.Status)),
	)

	notificationID, err := uc.NotificationRepository.Insert(ctx, record)
	if err != nil {
		uc.Log.Error("notificationUsecase.CreateNotification error inserting record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, err
	}

	uc.Log.Info("notificationUsecase.CreateNotification succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingNotificationIDKey, notificationID),
	)
	return notificationID, nil
}

func (uc *notificationUsecase) UpdateNotificationByID(ctx context.Context, notificationID int64, request *requests.SaveNotification) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.UpdateNotificationByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingNotificationIDKey, notificationID),
	)

	existing, err := uc.NotificationRepository.FindByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if existing == nil {
		return exceptions.ErrNotificationNotFound(nil)
	}

	record := buildRecord(request)
	record.ID = notificationID

	err = uc.NotificationRepository.Update(ctx, record)
	if err != nil {
		uc.Log.Error("notificationUsecase.UpdateNotificationByID error updating record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("notificationUsecase.UpdateNotificationByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingNotificationIDKey, notificationID),
		zap.String(constvars.LoggingStatusKey, string(record.Status)),
	)
	return nil
}

func (uc *notificationUsecase) DeleteNotificationByID(ctx context.Context, notificationID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.DeleteNotificationByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingNotificationIDKey, notificationID),
	)

	// Deliberately idempotent: deleting an id that is already gone succeeds.
	return uc.NotificationRepository.Delete(ctx, notificationID)
}

func (uc *notificationUsecase) RecordSerumAdministration(ctx context.Context, notificationID int64, request *requests.SerumAdministration) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.RecordSerumAdministration called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingNotificationIDKey, notificationID),
	)

	existing, err := uc.NotificationRepository.FindByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if existing == nil {
		return exceptions.ErrNotificationNotFound(nil)
	}

	now := time.Now()
	payload := existing.Data.Normalize(now)
	payload.IndicacaoSoro = "1"
	payload.SoroAplicado = true
	payload.SoroAplicadoEm = request.SoroAplicadoEm
	if payload.SoroAplicadoEm == "" {
		payload.SoroAplicadoEm = now.Format(constvars.DateLayout)
	}
	mergeSerumFields(&payload, request)

	return uc.UpdateNotificationByID(ctx, notificationID, &requests.SaveNotification{
		PatientName:      existing.PatientName,
		NotificationDate: existing.NotificationDate,
		AttendanceDate:   existing.AttendanceDate,
		Data:             payload,
	})
}

// buildRecord derives the status and the denormalized columns from the
// submitted payload. The payload itself is stored as submitted; completion
// against the template happens on read, not on write.
func buildRecord(request *requests.SaveNotification) *models.NotificationRecord {
	return &models.NotificationRecord{
		PatientName:      request.PatientName,
		NotificationDate: request.NotificationDate,
		AttendanceDate:   request.AttendanceDate,
		Status:           models.DeriveStatus(request.Data),
		Data:             request.Data,
	}
}

func mergeSerumFields(payload *models.Payload, request *requests.SerumAdministration) {
	if request.PesoPaciente != "" {
		payload.PesoPaciente = request.PesoPaciente
	}
	if request.QuantidadeSoro != "" {
		payload.QuantidadeSoro = request.QuantidadeSoro
	}
	if request.SoroTipo != "" {
		payload.SoroTipo = request.SoroTipo
	}
	if request.InfiltracaoSoro != "" {
		payload.InfiltracaoSoro = request.InfiltracaoSoro
	}
	if request.InfiltracaoExtensao != "" {
		payload.InfiltracaoExtensao = request.InfiltracaoExtensao
	}
	if request.SoroLaboratorio != "" {
		payload.SoroLaboratorio = request.SoroLaboratorio
	}
	if request.SoroPartida != "" {
		payload.SoroPartida = request.SoroPartida
	}
	if request.EventoAdversoSoro != "" {
		payload.EventoAdversoSoro = request.EventoAdversoSoro
	}
	if request.Observacoes != "" {
		payload.Observacoes = request.Observacoes
	}
}

func convertIntoResponse(record models.NotificationRecord, now time.Time) responses.Notification {
	return responses.Notification{
		ID:               record.ID,
		PatientName:      record.PatientName,
		NotificationDate: record.NotificationDate,
		AttendanceDate:   record.AttendanceDate,
		Status:           record.Status,
		Data:             record.Data.Normalize(now),
		CreatedAt:        record.CreatedAt,
	}
}

// IsNotFound reports whether err is the not-found error this usecase returns,
// letting callers branch without string matching.
func IsNotFound(err error) bool {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.StatusCode == constvars.StatusNotFound
	}
	return false
}
