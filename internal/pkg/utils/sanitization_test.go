package utils

import (
	"testing"

	"sinan-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSaveNotificationRequest(t *testing.T) {
	request := &requests.SaveNotification{
		PatientName:      "  Maria da Silva  ",
		NotificationDate: " 2024-03-15",
		AttendanceDate:   "2024-03-15 ",
	}

	SanitizeSaveNotificationRequest(request)

	assert.Equal(t, "Maria da Silva", request.PatientName)
	assert.Equal(t, "2024-03-15", request.NotificationDate)
	assert.Equal(t, "2024-03-15", request.AttendanceDate)
}

func TestSanitizeSaveNotificationRequest_WhitespaceOnlyNameFailsValidation(t *testing.T) {
	request := &requests.SaveNotification{
		PatientName:      "   ",
		NotificationDate: "2024-03-15",
		AttendanceDate:   "2024-03-15",
	}

	SanitizeSaveNotificationRequest(request)

	assert.Empty(t, request.PatientName)
	assert.Error(t, ValidateStruct(request))
}

func TestSanitizeSerumAdministrationRequest(t *testing.T) {
	request := &requests.SerumAdministration{
		SoroAplicadoEm: " 2024-03-20 ",
		QuantidadeSoro: "1200 ",
		Observacoes:    "  sem intercorrências",
	}

	SanitizeSerumAdministrationRequest(request)

	assert.Equal(t, "2024-03-20", request.SoroAplicadoEm)
	assert.Equal(t, "1200", request.QuantidadeSoro)
	assert.Equal(t, "sem intercorrências", request.Observacoes)
}
