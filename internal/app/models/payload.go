package models

import (
	"reflect"
	"sinan-service/internal/pkg/constvars"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// ExposureType holds the non-exclusive rabies exposure checkboxes of block 4
// of the SINAN form.
type ExposureType struct {
	ContatoIndireto bool `json:"contatoIndireto"`
	Arranhadura     bool `json:"arranhadura"`
	Lambedura       bool `json:"lambedura"`
	Mordedura       bool `json:"mordedura"`
	Outro           bool `json:"outro"`
}

// WoundLocation holds the non-exclusive wound location checkboxes.
type WoundLocation struct {
	Mucosa            bool `json:"mucosa"`
	CabecaPescoco     bool `json:"cabecaPescoco"`
	MaosPes           bool `json:"maosPes"`
	Tronco            bool `json:"tronco"`
	MembrosSuperiores bool `json:"membrosSuperiores"`
	MembrosInferiores bool `json:"membrosInferiores"`
}

// WoundType holds the non-exclusive wound type checkboxes.
type WoundType struct {
	Profundo    bool `json:"profundo"`
	Superficial bool `json:"superficial"`
	Dilacerante bool `json:"dilacerante"`
}

// VaccineDoseDates holds the five vaccine application dates, free-form DD/MM
// strings as written on the paper form.
type VaccineDoseDates struct {
	Dose1 string `json:"dose1"`
	Dose2 string `json:"dose2"`
	Dose3 string `json:"dose3"`
	Dose4 string `json:"dose4"`
	Dose5 string `json:"dose5"`
}

// Payload is the full SINAN anti-rabies notification form. Field names and
// JSON keys follow the official form's Portuguese nomenclature; the SPA and
// the stored data blob both use these keys. Almost every field is a free-form
// or coded string because that is how the paper form is transcribed.
type Payload struct {
	// Dados gerais
	NumeroSinan           string `json:"numeroSinan"`
	TipoNotificacao       string `json:"tipoNotificacao"`
	AgravoDoenca          string `json:"agravoDoenca"`
	DataNotificacao       string `json:"dataNotificacao"`
	UfNotificacao         string `json:"ufNotificacao"`
	MunicipioNotificacao  string `json:"municipioNotificacao"`
	CodigoIbgeNotificacao string `json:"codigoIbgeNotificacao"`
	UnidadeSaude          string `json:"unidadeSaude"`
	CodigoUnidade         string `json:"codigoUnidade"`
	DataAtendimento       string `json:"dataAtendimento"`

	// Notificacao individual
	NomePaciente   string `json:"nomePaciente"`
	DataNascimento string `json:"dataNascimento"`
	Idade          string `json:"idade"`
	IdadeTipo      string `json:"idadeTipo"`
	Sexo           string `json:"sexo"`
	Gestante       string `json:"gestante"`
	RacaCor        string `json:"racaCor"`
	Escolaridade   string `json:"escolaridade"`
	CartaoSus      string `json:"cartaoSus"`
	NomeMae        string `json:"nomeMae"`

	// Dados de residencia
	ResidenciaUf               string `json:"residenciaUf"`
	ResidenciaMunicipio        string `json:"residenciaMunicipio"`
	ResidenciaIbge             string `json:"residenciaIbge"`
	ResidenciaDistrito         string `json:"residenciaDistrito"`
	ResidenciaBairro           string `json:"residenciaBairro"`
	ResidenciaLogradouro       string `json:"residenciaLogradouro"`
	ResidenciaLogradouroCodigo string `json:"residenciaLogradouroCodigo"`
	ResidenciaNumero           string `json:"residenciaNumero"`
	ResidenciaComplemento      string `json:"residenciaComplemento"`
	ResidenciaGeo1             string `json:"residenciaGeo1"`
	ResidenciaGeo2             string `json:"residenciaGeo2"`
	ResidenciaPontoReferencia  string `json:"residenciaPontoReferencia"`
	ResidenciaCep              string `json:"residenciaCep"`
	ResidenciaTelefone         string `json:"residenciaTelefone"`
	ResidenciaZona             string `json:"residenciaZona"`
	ResidenciaPais             string `json:"residenciaPais"`

	// Antecedentes epidemiologicos
	Ocupacao               string        `json:"ocupacao"`
	ExposicaoTipo          ExposureType  `json:"exposicaoTipo"`
	Localizacao            WoundLocation `json:"localizacao"`
	Ferimento              string        `json:"ferimento"`
	FerimentoTipo          WoundType     `json:"ferimentoTipo"`
	DataExposicao          string        `json:"dataExposicao"`
	AntecedentesTratamento string        `json:"antecedentesTratamento"`
	AntecedentesTipo       string        `json:"antecedentesTipo"`
	ConcluidoQuando        string        `json:"concluidoQuando"`
	NumeroDoses            string        `json:"numeroDoses"`
	EspecieAnimal          string        `json:"especieAnimal"`
	EspecieAnimalOutro     string        `json:"especieAnimalOutro"`
	CondicaoAnimal         string        `json:"condicaoAnimal"`
	AnimalObservavel       string        `json:"animalObservavel"`

	// Tratamento atual
	TratamentoIndicado     string           `json:"tratamentoIndicado"`
	VacinaLaboratorio      string           `json:"vacinaLaboratorio"`
	VacinaLaboratorioOutro string           `json:"vacinaLaboratorioOutro"`
	VacinaLote             string           `json:"vacinaLote"`
	VacinaVencimento       string           `json:"vacinaVencimento"`
	VacinaDosesDatas       VaccineDoseDates `json:"vacinaDosesDatas"`

	// Conclusao e eventos
	CondicaoFinalAnimal     string `json:"condicaoFinalAnimal"`
	InterrupcaoTratamento   string `json:"interrupcaoTratamento"`
	MotivoInterrupcao       string `json:"motivoInterrupcao"`
	UnidadeProcurouPaciente string `json:"unidadeProcurouPaciente"`
	EventoAdversoVacina     string `json:"eventoAdversoVacina"`

	// Soro antirrabico
	IndicacaoSoro        string `json:"indicacaoSoro"`
	PesoPaciente         string `json:"pesoPaciente"`
	QuantidadeSoro       string `json:"quantidadeSoro"`
	SoroTipo             string `json:"soroTipo"`
	InfiltracaoSoro      string `json:"infiltracaoSoro"`
	InfiltracaoExtensao  string `json:"infiltracaoExtensao"`
	SoroLaboratorio      string `json:"soroLaboratorio"`
	SoroLaboratorioOutro string `json:"soroLaboratorioOutro"`
	SoroPartida          string `json:"soroPartida"`
	SoroAplicado         bool   `json:"soroAplicado"`
	SoroAplicadoEm       string `json:"soroAplicadoEm"`
	EventoAdversoSoro    string `json:"eventoAdversoSoro"`
	DataEncerramento     string `json:"dataEncerramento"`
	Observacoes          string `json:"observacoes"`

	// Investigador
	InvestigadorUnidade       string `json:"investigadorUnidade"`
	InvestigadorCodigoUnidade string `json:"investigadorCodigoUnidade"`
	InvestigadorNome          string `json:"investigadorNome"`
	InvestigadorFuncao        string `json:"investigadorFuncao"`

	// Extra carries JSON keys the current schema does not define, so that
	// records written by a newer client survive a store round trip intact.
	Extra map[string]json.RawMessage `json:"-"`
}

// payloadAlias strips Payload's methods so the codec helpers below do not
// recurse into themselves.
type payloadAlias Payload

var knownPayloadKeys = func() map[string]bool {
	keys := make(map[string]bool)
	payloadType := reflect.TypeOf(payloadAlias{})
	for i := 0; i < payloadType.NumField(); i++ {
		tag := strings.Split(payloadType.Field(i).Tag.Get("json"), ",")[0]
		if tag != "" && tag != "-" {
			keys[tag] = true
		}
	}
	return keys
}()

func (p *Payload) UnmarshalJSON(data []byte) error {
	var alias payloadAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key := range raw {
		if knownPayloadKeys[key] {
			delete(raw, key)
		}
	}
	if len(raw) > 0 {
		alias.Extra = raw
	}

	*p = Payload(alias)
	return nil
}

func (p Payload) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(payloadAlias(p))
	if err != nil {
		return nil, err
	}
	if len(p.Extra) == 0 {
		return known, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(known, &merged); err != nil {
		return nil, err
	}
	for key, value := range p.Extra {
		if _, ok := merged[key]; !ok {
			merged[key] = value
		}
	}
	return json.Marshal(merged)
}

// DefaultPayload returns the blank form template the SPA starts a new
// notification from: all scalars empty except the pre-filled coded values,
// all checkboxes off, both form dates set to the given day.
func DefaultPayload(now time.Time) Payload {
	today := now.Format(constvars.DateLayout)
	return Payload{
		TipoNotificacao: "INDIVIDUAL",
		AgravoDoenca:    "ATENDIMENTO ANTIRRÁBICO HUMANO",
		DataNotificacao: today,
		DataAtendimento: today,
		IdadeTipo:       "4",
		Gestante:        "6",
		ResidenciaPais:  "Brasil",
		IndicacaoSoro:   "2",
	}
}
