package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           = ContextKey("request_id")
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY = ContextKey("is_client_request_id")
)

// DateLayout is the calendar-date format used by every date field on the
// notification form (dataNotificacao, dataAtendimento, soroAplicadoEm, ...).
const DateLayout = "2006-01-02"

const (
	URLParamNotificationID = "notification_id"
)
