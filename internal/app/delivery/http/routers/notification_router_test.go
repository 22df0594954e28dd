package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sinan-service/internal/app/config"
	"sinan-service/internal/app/delivery/http/middlewares"
	"sinan-service/internal/app/services/notifications"
	"sinan-service/internal/pkg/dto/requests"
	"sinan-service/internal/pkg/dto/responses"
	"sinan-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockNotificationUsecase struct {
	mock.Mock
}

func (m *MockNotificationUsecase) ListNotifications(ctx context.Context) ([]responses.Notification, error) {
	args := m.Called(ctx)
	return args.Get(0).([]responses.Notification), args.Error(1)
}

func (m *MockNotificationUsecase) GetNotificationByID(ctx context.Context, notificationID int64) (*responses.Notification, error) {
	args := m.Called(ctx, notificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Notification), args.Error(1)
}

func (m *MockNotificationUsecase) CreateNotification(ctx context.Context, request *requests.SaveNotification) (int64, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationUsecase) UpdateNotificationByID(ctx context.Context, notificationID int64, request *requests.SaveNotification) error {
	args := m.Called(ctx, notificationID, request)
	return args.Error(0)
}

func (m *MockNotificationUsecase) DeleteNotificationByID(ctx context.Context, notificationID int64) error {
	args := m.Called(ctx, notificationID)
	return args.Error(0)
}

func (m *MockNotificationUsecase) RecordSerumAdministration(ctx context.Context, notificationID int64, request *requests.SerumAdministration) error {
	args := m.Called(ctx, notificationID, request)
	return args.Error(0)
}

func newTestRouter(mockUsecase *MockNotificationUsecase) *chi.Mux {
	logger := zap.NewNop()

	notificationController := &notifications.NotificationController{
		NotificationUsecase: mockUsecase,
		Log:                 logger,
	}

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		InternalConfig: &config.InternalConfig{App: config.App{}},
	}

	router := chi.NewRouter()
	router.Route("/notifications", func(r chi.Router) {
		attachNotificationRoutes(r, middlewareInstance, notificationController)
	})
	return router
}

func TestNotificationRouter_List(t *testing.T) {
	mockUsecase := new(MockNotificationUsecase)
	router := newTestRouter(mockUsecase)

	mockUsecase.On("ListNotifications", mock.Anything).Return([]responses.Notification{
		{ID: 2, PatientName: "Segundo"},
		{ID: 1, PatientName: "Primeiro"},
	}, nil)

	req := httptest.NewRequest("GET", "/notifications/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body []responses.Notification
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body, 2)
	assert.Equal(t, int64(2), body[0].ID)
}

func TestNotificationRouter_ListEmptyIsArray(t *testing.T) {
	mockUsecase := new(MockNotificationUsecase)
	router := newTestRouter(mockUsecase)

	mockUsecase.On("ListNotifications", mock.Anything).Return([]responses.Notification{}, nil)

	req := httptest.NewRequest("GET", "/notifications/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestNotificationRouter_ListWithSearchTerm(t *testing.T) {
	mockUsecase := new(MockNotificationUsecase)
	router := newTestRouter(mockUsecase)

	mockUsecase.On("ListNotifications", mock.Anything).Return([]responses.Notification{
		{ID: 2, PatientName: "Maria da Silva"},
		{ID: 1, PatientName: "João Souza"},
	}, nil)

	req := httptest.NewRequest("GET", "/notifications/?search=maria", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body []responses.Notification
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body, 1)
	assert.Equal(t, "Maria da Silva", body[0].PatientName)
}

func TestNotificationRouter_GetNotFoundBody(t *testing.T) {
	mockUsecase := new(MockNotificationUsecase)
	router := newTestRouter(mockUsecase)

	mockUsecase.On("GetNotificationByID", mock.Anything, int64(99)).
		Return(nil, exceptions.ErrNotificationNotFound(nil))

	req := httptest.NewRequest("GET", "/notifications/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, `{"error":"Not found"}`, strings.TrimSpace(rec.Body.String()))
}

func TestNotificationRouter_GetInvalidID(t *testing.T) {
	mockUsecase := new(MockNotificationUsecase)
	router := newTestRouter(mockUsecase)

	req := httptest.NewRequest("GET", "/notifications/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockUsecase.AssertNotCalled(t, "GetNotificationByID", mock.Anything, mock.Anything)
}

func TestNotificationRouter_CreateReturnsID(t *testing.T) {
	mockUsecase := new(MockNotificationUsecase)
	router := newTestRouter(mockUsecase)

	mockUsecase.On("CreateNotification", mock.Anything, mock.AnythingOfType("*requests.SaveNotification")).
		Return(int64(7), nil)

	requestBody := requests.SaveNotification{
		PatientName:      "Maria da Silva",
		NotificationDate: "2024-03-15",
		AttendanceDate:   "2024-03-15",
	}
	jsonBody, _ := json.Marshal(requestBody)

	req := httptest.NewRequest("POST", "/notifications/", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, `{"id":7}`, strings.TrimSpace(rec.Body.String()))
}

func TestNotificationRouter_CreateMissingRequiredField(t *testing.T) {
	mockUsecase := new(MockNotificationUsecase)
	router := newTestRouter(mockUsecase)

	jsonBody := []byte(`{"patient_name":"  ","notification_date":"2024-03-15","attendance_date":"2024-03-15"}`)

	req := httptest.NewRequest("POST", "/notifications/", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockUsecase.AssertNotCalled(t, "CreateNotification", mock.Anything, mock.Anything)
}

func TestNotificationRouter_UpdateSuccessBody(t *testing.T) {
	mockUsecase := new(MockNotificationUsecase)
	router := newTestRouter(mockUsecase)

	mockUsecase.On("UpdateNotificationByID", mock.Anything, int64(5), mock.AnythingOfType("*requests.SaveNotification")).
		Return(nil)

	requestBody := requests.SaveNotification{
		PatientName:      "Maria da Silva",
		NotificationDate: "2024-03-15",
		AttendanceDate:   "2024-03-15",
	}
	jsonBody, _ := json.Marshal(requestBody)

	req := httptest.NewRequest("PUT", "/notifications/5", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"success":true}`, strings.TrimSpace(rec.Body.String()))
}

func TestNotificationRouter_DeleteSuccessBody(t *testing.T) {
	mockUsecase := new(MockNotificationUsecase)
	router := newTestRouter(mockUsecase)

	mockUsecase.On("DeleteNotificationByID", mock.Anything, int64(5)).Return(nil)

	req := httptest.NewRequest("DELETE", "/notifications/5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"success":true}`, strings.TrimSpace(rec.Body.String()))
}

func TestNotificationRouter_SerumEndpoint(t *testing.T) {
	mockUsecase := new(MockNotificationUsecase)
	router := newTestRouter(mockUsecase)

	mockUsecase.On("RecordSerumAdministration", mock.Anything, int64(9), mock.AnythingOfType("*requests.SerumAdministration")).
		Return(nil)

	req := httptest.NewRequest("POST", "/notifications/9/serum", bytes.NewBufferString(`{"quantidadeSoro":"1200"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"success":true}`, strings.TrimSpace(rec.Body.String()))
}

func TestNotificationRouter_SerumNotFound(t *testing.T) {
	mockUsecase := new(MockNotificationUsecase)
	router := newTestRouter(mockUsecase)

	mockUsecase.On("RecordSerumAdministration", mock.Anything, int64(404), mock.AnythingOfType("*requests.SerumAdministration")).
		Return(exceptions.ErrNotificationNotFound(nil))

	req := httptest.NewRequest("POST", "/notifications/404/serum", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, `{"error":"Not found"}`, strings.TrimSpace(rec.Body.String()))
}
