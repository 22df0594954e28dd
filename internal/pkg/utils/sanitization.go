package utils

import (
	"sinan-service/internal/pkg/dto/requests"
	"strings"
)

// SanitizeSaveNotificationRequest trims the denormalized columns before
// validation so a name of only spaces does not pass the required check.
func SanitizeSaveNotificationRequest(request *requests.SaveNotification) {
	request.PatientName = strings.TrimSpace(request.PatientName)
	request.NotificationDate = strings.TrimSpace(request.NotificationDate)
	request.AttendanceDate = strings.TrimSpace(request.AttendanceDate)
}

// SanitizeSerumAdministrationRequest trims every serum field; the SPA sends
// raw input values.
func SanitizeSerumAdministrationRequest(request *requests.SerumAdministration) {
	request.SoroAplicadoEm = strings.TrimSpace(request.SoroAplicadoEm)
	request.PesoPaciente = strings.TrimSpace(request.PesoPaciente)
	request.QuantidadeSoro = strings.TrimSpace(request.QuantidadeSoro)
	request.SoroTipo = strings.TrimSpace(request.SoroTipo)
	request.InfiltracaoSoro = strings.TrimSpace(request.InfiltracaoSoro)
	request.InfiltracaoExtensao = strings.TrimSpace(request.InfiltracaoExtensao)
	request.SoroLaboratorio = strings.TrimSpace(request.SoroLaboratorio)
	request.SoroPartida = strings.TrimSpace(request.SoroPartida)
	request.EventoAdversoSoro = strings.TrimSpace(request.EventoAdversoSoro)
	request.Observacoes = strings.TrimSpace(request.Observacoes)
}
