package notifications

import (
	"context"
	"database/sql"
	"sinan-service/internal/app/contracts"
	"sinan-service/internal/app/models"
	"sinan-service/internal/pkg/exceptions"
	"sinan-service/internal/pkg/queries"
	"sync"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

type notificationSQLiteRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	notificationSQLiteRepositoryInstance contracts.NotificationRepository
	onceNotificationSQLiteRepository     sync.Once
)

func NewNotificationSQLiteRepository(db *sql.DB, logger *zap.Logger) contracts.NotificationRepository {
	onceNotificationSQLiteRepository.Do(func() {
		instance := &notificationSQLiteRepository{
			DB:  db,
			Log: logger,
		}
		notificationSQLiteRepositoryInstance = instance
	})
	return notificationSQLiteRepositoryInstance
}

func (r *notificationSQLiteRepository) Insert(ctx context.Context, record *models.NotificationRecord) (int64, error) {
	data, err := json.Marshal(record.Data)
	if err != nil {
		return 0, exceptions.ErrCannotMarshalJSON(err)
	}

	result, err := r.DB.ExecContext(ctx, queries.InsertNotification,
		record.PatientName,
		record.NotificationDate,
		record.AttendanceDate,
		string(record.Status),
		string(data),
	)
	if err != nil {
		return 0, exceptions.ErrSQLiteDBInsertData(err)
	}

	notificationID, err := result.LastInsertId()
	if err != nil {
		return 0, exceptions.ErrSQLiteDBInsertData(err)
	}
	return notificationID, nil
}

func (r *notificationSQLiteRepository) FindAll(ctx context.Context) ([]models.NotificationRecord, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetAllNotifications)
	if err != nil {
		return nil, exceptions.ErrSQLiteDBFindData(err)
	}
	defer rows.Close()

	records := make([]models.NotificationRecord, 0)
	for rows.Next() {
		record, err := scanNotification(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrSQLiteDBIterateDataset(err)
	}

	return records, nil
}

func (r *notificationSQLiteRepository) FindByID(ctx context.Context, notificationID int64) (*models.NotificationRecord, error) {
	row := r.DB.QueryRowContext(ctx, queries.GetNotificationByID, notificationID)
	record, err := scanNotification(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *notificationSQLiteRepository) Update(ctx context.Context, record *models.NotificationRecord) error {
	data, err := json.Marshal(record.Data)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	_, err = r.DB.ExecContext(ctx, queries.UpdateNotificationByID,
		record.PatientName,
		record.NotificationDate,
		record.AttendanceDate,
		string(record.Status),
		string(data),
		record.ID,
	)
	if err != nil {
		return exceptions.ErrSQLiteDBUpdateData(err)
	}
	return nil
}

func (r *notificationSQLiteRepository) Delete(ctx context.Context, notificationID int64) error {
	_, err := r.DB.ExecContext(ctx, queries.DeleteNotificationByID, notificationID)
	if err != nil {
		return exceptions.ErrSQLiteDBDeleteData(err)
	}
	return nil
}

// scanNotification reads one row in the column order shared by both SELECT
// statements, deserializing the data blob into the typed payload. sql.ErrNoRows
// passes through untouched so FindByID can map it to its not-found contract.
func scanNotification(scan func(dest ...interface{}) error) (*models.NotificationRecord, error) {
	var record models.NotificationRecord
	var status string
	var data string

	err := scan(
		&record.ID,
		&record.PatientName,
		&record.NotificationDate,
		&record.AttendanceDate,
		&status,
		&data,
		&record.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	} else if err != nil {
		return nil, exceptions.ErrSQLiteDBFindData(err)
	}

	record.Status = models.Status(status)
	if err := json.Unmarshal([]byte(data), &record.Data); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return &record, nil
}
