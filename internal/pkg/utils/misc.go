package utils

import (
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// TodayDate returns the current calendar date the way every date field on the
// form stores it.
func TodayDate() string {
	return time.Now().Format("2006-01-02")
}
