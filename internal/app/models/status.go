package models

// Status is the coarse serum-workflow summary derived from the payload. It is
// recomputed from the payload on every write and never accepted from a client.
type Status string

const (
	StatusPending      Status = "pending"
	StatusSerumPending Status = "soro_pending"
	StatusSerumDone    Status = "soro_done"
)

const serumIndicated = "1"

// DeriveStatus maps a payload to its workflow status. Total: any payload,
// however malformed, lands on exactly one of the three values.
func DeriveStatus(payload Payload) Status {
	if payload.IndicacaoSoro == serumIndicated && payload.SoroAplicado {
		return StatusSerumDone
	}
	if payload.IndicacaoSoro == serumIndicated {
		return StatusSerumPending
	}
	return StatusPending
}
