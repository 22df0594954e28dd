package constvars

// Client-facing messages. These go out verbatim in the {"error": ...} body, so
// the wording is part of the API surface (the SPA matches on "Not found").
const (
	ErrClientNotFound                      = "Not found"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
)

const (
	ErrDevValidationFailed           = "validation failed"
	ErrDevInvalidInput               = "invalid input"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevServerProcess              = "server failed to process the request"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevNotificationNotFound       = "notification record not found"
	ErrDevURLParamIDValidationFailed = "failed to validate URL param: %s"

	ErrDevDBFailedToInsertData     = "database failed to insert data"
	ErrDevDBFailedToFindData       = "database failed to find data"
	ErrDevDBFailedToUpdateData     = "database failed to update data"
	ErrDevDBFailedToDeleteData     = "database failed to delete data"
	ErrDevDBFailedToIterateDataset = "database failed to iterate dataset"

	ErrResponseUnknown = "unknown"
)
