package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingNotificationIDKey = "notification_id"
	LoggingRecordsCountKey   = "records_count"
	LoggingStatusKey         = "status"
)
