package models

// NotificationRecord is one row of the notifications table. PatientName and
// the two dates are denormalized copies of payload fields kept in sync on
// every write so the list view never has to open the data blob.
type NotificationRecord struct {
	ID               int64
	PatientName      string
	NotificationDate string
	AttendanceDate   string
	Status           Status
	Data             Payload
	CreatedAt        string
}
