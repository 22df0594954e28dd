package exceptions

import (
	"fmt"
	"runtime"
	"sinan-service/internal/pkg/constvars"
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	DevMessage    string     `json:"-"`
	Locations     []Location `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	location := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, location.File, location.Line, location.FunctionName)
}

func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{location},
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ErrResponseUnknown,
			Line:         0,
			FunctionName: constvars.ErrResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
