package responses

import "sinan-service/internal/app/models"

// Notification mirrors the stored row with the data blob inlined. The snake
// case keys are the SPA's wire format and must stay as they are.
type Notification struct {
	ID               int64          `json:"id"`
	PatientName      string         `json:"patient_name"`
	NotificationDate string         `json:"notification_date"`
	AttendanceDate   string         `json:"attendance_date"`
	Status           models.Status  `json:"status"`
	Data             models.Payload `json:"data"`
	CreatedAt        string         `json:"created_at"`
}

// CreatedNotification is the create endpoint's 201 body.
type CreatedNotification struct {
	ID int64 `json:"id"`
}

// OperationResult is the body of update, delete and serum responses.
type OperationResult struct {
	Success bool `json:"success"`
}
