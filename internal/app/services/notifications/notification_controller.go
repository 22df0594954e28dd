package notifications

import (
	"context"
	"net/http"
	"sinan-service/internal/app/contracts"
	"sinan-service/internal/app/delivery/view"
	"sinan-service/internal/pkg/constvars"
	"sinan-service/internal/pkg/dto/requests"
	"sinan-service/internal/pkg/dto/responses"
	"sinan-service/internal/pkg/exceptions"
	"sinan-service/internal/pkg/utils"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

type NotificationController struct {
	NotificationUsecase contracts.NotificationUsecase
	Log                 *zap.Logger
}

var (
	notificationControllerInstance *NotificationController
	onceNotificationController     sync.Once
)

func NewNotificationController(notificationUsecase contracts.NotificationUsecase, logger *zap.Logger) *NotificationController {
	onceNotificationController.Do(func() {
		notificationControllerInstance = &NotificationController{
			NotificationUsecase: notificationUsecase,
			Log:                 logger,
		}
	})
	return notificationControllerInstance
}

func (c *NotificationController) ListNotifications(w http.ResponseWriter, r *http.Request) {
	params := requests.QueryParams{Search: r.URL.Query().Get("search")}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := c.NotificationUsecase.ListNotifications(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, mapDeadline(ctx, err))
		return
	}

	// The SPA filters its list client side; the same projection is applied
	// here when the search parameter is sent directly to the API.
	response = view.FilterRecords(response, params.Search)

	utils.WriteJSONResponse(w, constvars.StatusOK, response)
}

func (c *NotificationController) GetNotificationByID(w http.ResponseWriter, r *http.Request) {
	notificationID, err := parseNotificationID(r)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := c.NotificationUsecase.GetNotificationByID(ctx, notificationID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, mapDeadline(ctx, err))
		return
	}

	utils.WriteJSONResponse(w, constvars.StatusOK, response)
}

func (c *NotificationController) CreateNotification(w http.ResponseWriter, r *http.Request) {
	request, err := decodeSaveNotification(r)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	notificationID, err := c.NotificationUsecase.CreateNotification(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, mapDeadline(ctx, err))
		return
	}

	utils.WriteJSONResponse(w, constvars.StatusCreated, responses.CreatedNotification{ID: notificationID})
}

func (c *NotificationController) UpdateNotificationByID(w http.ResponseWriter, r *http.Request) {
	notificationID, err := parseNotificationID(r)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	request, err := decodeSaveNotification(r)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err = c.NotificationUsecase.UpdateNotificationByID(ctx, notificationID, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, mapDeadline(ctx, err))
		return
	}

	utils.WriteJSONResponse(w, constvars.StatusOK, responses.OperationResult{Success: true})
}

func (c *NotificationController) DeleteNotificationByID(w http.ResponseWriter, r *http.Request) {
	notificationID, err := parseNotificationID(r)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err = c.NotificationUsecase.DeleteNotificationByID(ctx, notificationID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, mapDeadline(ctx, err))
		return
	}

	utils.WriteJSONResponse(w, constvars.StatusOK, responses.OperationResult{Success: true})
}

func (c *NotificationController) RecordSerumAdministration(w http.ResponseWriter, r *http.Request) {
	notificationID, err := parseNotificationID(r)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	request := &requests.SerumAdministration{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeSerumAdministrationRequest(request)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err = c.NotificationUsecase.RecordSerumAdministration(ctx, notificationID, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, mapDeadline(ctx, err))
		return
	}

	utils.WriteJSONResponse(w, constvars.StatusOK, responses.OperationResult{Success: true})
}

func decodeSaveNotification(r *http.Request) (*requests.SaveNotification, error) {
	request := &requests.SaveNotification{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	utils.SanitizeSaveNotificationRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return request, nil
}

func parseNotificationID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, constvars.URLParamNotificationID)
	notificationID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, exceptions.ErrURLParamIDValidation(err, constvars.URLParamNotificationID)
	}
	return notificationID, nil
}

func mapDeadline(ctx context.Context, err error) error {
	if ctx.Err() == context.DeadlineExceeded {
		return exceptions.ErrServerDeadlineExceeded(ctx.Err())
	}
	return err
}
