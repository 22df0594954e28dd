package utils

import (
	"errors"
	"net/http"
	"sinan-service/internal/pkg/constvars"
	"sinan-service/internal/pkg/exceptions"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

// WriteJSONResponse emits the payload as-is. The SPA expects the raw shapes
// ({"id":N}, {"success":true}, bare arrays), not a success envelope, so there
// is deliberately no wrapper type here.
func WriteJSONResponse(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

type errorBody struct {
	Error string `json:"error"`
}

// BuildErrorResponse logs the developer-facing side of the error and sends the
// client-facing side as {"error": message}.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		for _, location := range customErr.Locations {
			log.Error(customErr.DevMessage,
				zap.String("file", location.File),
				zap.Int("line", location.Line),
				zap.String("function_name", location.FunctionName),
			)
		}
	} else {
		log.Error(err.Error())
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(errorBody{Error: clientMessage})
}
