package queries

const (
	// Listing sorts newest creation first; the id tiebreak keeps the order
	// stable when several rows share the same CURRENT_TIMESTAMP second.
	GetAllNotifications = "SELECT id, patient_name, notification_date, attendance_date, status, data, created_at FROM notifications ORDER BY created_at DESC, id DESC"

	GetNotificationByID = "SELECT id, patient_name, notification_date, attendance_date, status, data, created_at FROM notifications WHERE id = ?"

	InsertNotification = "INSERT INTO notifications (patient_name, notification_date, attendance_date, status, data) VALUES (?, ?, ?, ?, ?)"

	UpdateNotificationByID = "UPDATE notifications SET patient_name = ?, notification_date = ?, attendance_date = ?, status = ?, data = ? WHERE id = ?"

	DeleteNotificationByID = "DELETE FROM notifications WHERE id = ?"
)
