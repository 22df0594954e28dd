package exceptions

import (
	"fmt"
	"sinan-service/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrNotificationNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientNotFound, constvars.ErrDevNotificationNotFound)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}

	// Parse
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}

	// SQLite DB
	ErrSQLiteDBInsertData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertData)
	}
	ErrSQLiteDBFindData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindData)
	}
	ErrSQLiteDBUpdateData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateData)
	}
	ErrSQLiteDBDeleteData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteData)
	}
	ErrSQLiteDBIterateDataset = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDataset)
	}
)
