package requests

import "sinan-service/internal/app/models"

// SaveNotification is the body of both the create and the update endpoint.
// Only the three denormalized columns are mandatory; everything else lives in
// Data and is accepted as-is.
type SaveNotification struct {
	PatientName      string         `json:"patient_name" validate:"required"`
	NotificationDate string         `json:"notification_date" validate:"required"`
	AttendanceDate   string         `json:"attendance_date" validate:"required"`
	Data             models.Payload `json:"data"`
}

// SerumAdministration records that the indicated anti-rabies serum was
// applied. Every field is optional; a blank SoroAplicadoEm means "today".
type SerumAdministration struct {
	SoroAplicadoEm      string `json:"soroAplicadoEm"`
	PesoPaciente        string `json:"pesoPaciente"`
	QuantidadeSoro      string `json:"quantidadeSoro"`
	SoroTipo            string `json:"soroTipo"`
	InfiltracaoSoro     string `json:"infiltracaoSoro"`
	InfiltracaoExtensao string `json:"infiltracaoExtensao"`
	SoroLaboratorio     string `json:"soroLaboratorio"`
	SoroPartida         string `json:"soroPartida"`
	EventoAdversoSoro   string `json:"eventoAdversoSoro"`
	Observacoes         string `json:"observacoes"`
}
