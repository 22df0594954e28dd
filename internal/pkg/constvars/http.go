package constvars

const (
	MIMEApplicationJSON            = "application/json"
	MIMEApplicationJSONCharsetUTF8 = "application/json; charset=utf-8"
	MIMETextHTMLCharsetUTF8        = "text/html; charset=utf-8"
)

const (
	StatusOK      = 200
	StatusCreated = 201

	StatusBadRequest      = 400
	StatusNotFound        = 404
	StatusTooManyRequests = 429

	StatusInternalServerError = 500
	StatusGatewayTimeout      = 504
)

const (
	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-ID"
)
