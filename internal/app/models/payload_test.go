package models

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	testCases := []struct {
		name     string
		payload  Payload
		expected Status
	}{
		{
			name:     "serum indicated and applied",
			payload:  Payload{IndicacaoSoro: "1", SoroAplicado: true},
			expected: StatusSerumDone,
		},
		{
			name:     "serum indicated but not applied",
			payload:  Payload{IndicacaoSoro: "1"},
			expected: StatusSerumPending,
		},
		{
			name:     "serum not indicated",
			payload:  Payload{IndicacaoSoro: "2"},
			expected: StatusPending,
		},
		{
			name:     "serum applied without indication",
			payload:  Payload{IndicacaoSoro: "2", SoroAplicado: true},
			expected: StatusPending,
		},
		{
			name:     "empty payload",
			payload:  Payload{},
			expected: StatusPending,
		},
		{
			name:     "malformed indication code",
			payload:  Payload{IndicacaoSoro: "yes", SoroAplicado: true},
			expected: StatusPending,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DeriveStatus(tc.payload))
		})
	}
}

func TestDefaultPayload(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	payload := DefaultPayload(now)

	assert.Equal(t, "INDIVIDUAL", payload.TipoNotificacao)
	assert.Equal(t, "ATENDIMENTO ANTIRRÁBICO HUMANO", payload.AgravoDoenca)
	assert.Equal(t, "2024-03-15", payload.DataNotificacao)
	assert.Equal(t, "2024-03-15", payload.DataAtendimento)
	assert.Equal(t, "4", payload.IdadeTipo)
	assert.Equal(t, "6", payload.Gestante)
	assert.Equal(t, "Brasil", payload.ResidenciaPais)
	assert.Equal(t, "2", payload.IndicacaoSoro)
	assert.Empty(t, payload.NomePaciente)
	assert.False(t, payload.SoroAplicado)
	assert.Empty(t, payload.SoroAplicadoEm)
	assert.Equal(t, ExposureType{}, payload.ExposicaoTipo)
	assert.Equal(t, VaccineDoseDates{}, payload.VacinaDosesDatas)
}

func TestNormalize_CompletesTemplate(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	partial := Payload{
		NomePaciente:  "Maria da Silva",
		IndicacaoSoro: "1",
	}
	normalized := partial.Normalize(now)

	assert.Equal(t, "Maria da Silva", normalized.NomePaciente)
	assert.Equal(t, "1", normalized.IndicacaoSoro)
	assert.Equal(t, "INDIVIDUAL", normalized.TipoNotificacao)
	assert.Equal(t, "Brasil", normalized.ResidenciaPais)
	assert.Equal(t, "2024-03-15", normalized.DataNotificacao)
}

func TestNormalize_KeepsStoredValuesOverDefaults(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	partial := Payload{
		TipoNotificacao: "NEGATIVA",
		ResidenciaPais:  "Argentina",
		DataNotificacao: "2023-12-01",
	}
	normalized := partial.Normalize(now)

	assert.Equal(t, "NEGATIVA", normalized.TipoNotificacao)
	assert.Equal(t, "Argentina", normalized.ResidenciaPais)
	assert.Equal(t, "2023-12-01", normalized.DataNotificacao)
}

func TestNormalize_MergesCheckboxGroupsAndDoses(t *testing.T) {
	now := time.Now()

	partial := Payload{
		ExposicaoTipo: ExposureType{Mordedura: true},
		Localizacao:   WoundLocation{MaosPes: true},
		FerimentoTipo: WoundType{Profundo: true},
		VacinaDosesDatas: VaccineDoseDates{
			Dose1: "01/03",
			Dose3: "08/03",
		},
	}
	normalized := partial.Normalize(now)

	assert.True(t, normalized.ExposicaoTipo.Mordedura)
	assert.False(t, normalized.ExposicaoTipo.Lambedura)
	assert.True(t, normalized.Localizacao.MaosPes)
	assert.True(t, normalized.FerimentoTipo.Profundo)
	assert.Equal(t, "01/03", normalized.VacinaDosesDatas.Dose1)
	assert.Empty(t, normalized.VacinaDosesDatas.Dose2)
	assert.Equal(t, "08/03", normalized.VacinaDosesDatas.Dose3)
}

func TestNormalize_CarriesUnknownKeys(t *testing.T) {
	partial := Payload{
		Extra: map[string]json.RawMessage{
			"campoNovo": json.RawMessage(`"valor"`),
		},
	}
	normalized := partial.Normalize(time.Now())

	assert.Equal(t, partial.Extra, normalized.Extra)
}

func TestPayload_UnmarshalPreservesUnknownKeys(t *testing.T) {
	raw := []byte(`{"nomePaciente":"João","campoNovo":"valor","outroCampo":{"x":1}}`)

	var payload Payload
	err := json.Unmarshal(raw, &payload)
	assert.NoError(t, err)

	assert.Equal(t, "João", payload.NomePaciente)
	assert.Len(t, payload.Extra, 2)
	assert.JSONEq(t, `"valor"`, string(payload.Extra["campoNovo"]))
	assert.JSONEq(t, `{"x":1}`, string(payload.Extra["outroCampo"]))
}

func TestPayload_MarshalReemitsUnknownKeys(t *testing.T) {
	raw := []byte(`{"nomePaciente":"João","campoNovo":"valor"}`)

	var payload Payload
	err := json.Unmarshal(raw, &payload)
	assert.NoError(t, err)

	out, err := json.Marshal(payload)
	assert.NoError(t, err)

	var decoded map[string]json.RawMessage
	err = json.Unmarshal(out, &decoded)
	assert.NoError(t, err)

	assert.JSONEq(t, `"João"`, string(decoded["nomePaciente"]))
	assert.JSONEq(t, `"valor"`, string(decoded["campoNovo"]))
}

func TestPayload_MarshalWithoutExtraOmitsNothingKnown(t *testing.T) {
	payload := Payload{NomePaciente: "Ana"}

	out, err := json.Marshal(payload)
	assert.NoError(t, err)

	var decoded map[string]json.RawMessage
	err = json.Unmarshal(out, &decoded)
	assert.NoError(t, err)

	assert.Contains(t, decoded, "nomePaciente")
	assert.Contains(t, decoded, "indicacaoSoro")
	assert.Contains(t, decoded, "vacinaDosesDatas")
	assert.NotContains(t, decoded, "Extra")
}
