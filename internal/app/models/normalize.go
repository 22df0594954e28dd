package models

import "time"

// Normalize completes a partially stored payload against the blank form
// template, so no consumer ever sees a missing field. Every scalar keeps its
// stored value when one is present and falls back to the template default
// otherwise; the checkbox groups and dose dates are merged key by key, and
// unknown keys carried in Extra pass through untouched. The merge is explicit
// per field on purpose: the schema is the single list below, not whatever
// reflection would find.
func (p Payload) Normalize(now time.Time) Payload {
	out := DefaultPayload(now)

	// Dados gerais
	out.NumeroSinan = keepString(p.NumeroSinan, out.NumeroSinan)
	out.TipoNotificacao = keepString(p.TipoNotificacao, out.TipoNotificacao)
	out.AgravoDoenca = keepString(p.AgravoDoenca, out.AgravoDoenca)
	out.DataNotificacao = keepString(p.DataNotificacao, out.DataNotificacao)
	out.UfNotificacao = keepString(p.UfNotificacao, out.UfNotificacao)
	out.MunicipioNotificacao = keepString(p.MunicipioNotificacao, out.MunicipioNotificacao)
	out.CodigoIbgeNotificacao = keepString(p.CodigoIbgeNotificacao, out.CodigoIbgeNotificacao)
	out.UnidadeSaude = keepString(p.UnidadeSaude, out.UnidadeSaude)
	out.CodigoUnidade = keepString(p.CodigoUnidade, out.CodigoUnidade)
	out.DataAtendimento = keepString(p.DataAtendimento, out.DataAtendimento)

	// Notificacao individual
	out.NomePaciente = keepString(p.NomePaciente, out.NomePaciente)
	out.DataNascimento = keepString(p.DataNascimento, out.DataNascimento)
	out.Idade = keepString(p.Idade, out.Idade)
	out.IdadeTipo = keepString(p.IdadeTipo, out.IdadeTipo)
	out.Sexo = keepString(p.Sexo, out.Sexo)
	out.Gestante = keepString(p.Gestante, out.Gestante)
	out.RacaCor = keepString(p.RacaCor, out.RacaCor)
	out.Escolaridade = keepString(p.Escolaridade, out.Escolaridade)
	out.CartaoSus = keepString(p.CartaoSus, out.CartaoSus)
	out.NomeMae = keepString(p.NomeMae, out.NomeMae)

	// Dados de residencia
	out.ResidenciaUf = keepString(p.ResidenciaUf, out.ResidenciaUf)
	out.ResidenciaMunicipio = keepString(p.ResidenciaMunicipio, out.ResidenciaMunicipio)
	out.ResidenciaIbge = keepString(p.ResidenciaIbge, out.ResidenciaIbge)
	out.ResidenciaDistrito = keepString(p.ResidenciaDistrito, out.ResidenciaDistrito)
	out.ResidenciaBairro = keepString(p.ResidenciaBairro, out.ResidenciaBairro)
	out.ResidenciaLogradouro = keepString(p.ResidenciaLogradouro, out.ResidenciaLogradouro)
	out.ResidenciaLogradouroCodigo = keepString(p.ResidenciaLogradouroCodigo, out.ResidenciaLogradouroCodigo)
	out.ResidenciaNumero = keepString(p.ResidenciaNumero, out.ResidenciaNumero)
	out.ResidenciaComplemento = keepString(p.ResidenciaComplemento, out.ResidenciaComplemento)
	out.ResidenciaGeo1 = keepString(p.ResidenciaGeo1, out.ResidenciaGeo1)
	out.ResidenciaGeo2 = keepString(p.ResidenciaGeo2, out.ResidenciaGeo2)
	out.ResidenciaPontoReferencia = keepString(p.ResidenciaPontoReferencia, out.ResidenciaPontoReferencia)
	out.ResidenciaCep = keepString(p.ResidenciaCep, out.ResidenciaCep)
	out.ResidenciaTelefone = keepString(p.ResidenciaTelefone, out.ResidenciaTelefone)
	out.ResidenciaZona = keepString(p.ResidenciaZona, out.ResidenciaZona)
	out.ResidenciaPais = keepString(p.ResidenciaPais, out.ResidenciaPais)

	// Antecedentes epidemiologicos
	out.Ocupacao = keepString(p.Ocupacao, out.Ocupacao)
	out.ExposicaoTipo.ContatoIndireto = p.ExposicaoTipo.ContatoIndireto
	out.ExposicaoTipo.Arranhadura = p.ExposicaoTipo.Arranhadura
	out.ExposicaoTipo.Lambedura = p.ExposicaoTipo.Lambedura
	out.ExposicaoTipo.Mordedura = p.ExposicaoTipo.Mordedura
	out.ExposicaoTipo.Outro = p.ExposicaoTipo.Outro
	out.Localizacao.Mucosa = p.Localizacao.Mucosa
	out.Localizacao.CabecaPescoco = p.Localizacao.CabecaPescoco
	out.Localizacao.MaosPes = p.Localizacao.MaosPes
	out.Localizacao.Tronco = p.Localizacao.Tronco
	out.Localizacao.MembrosSuperiores = p.Localizacao.MembrosSuperiores
	out.Localizacao.MembrosInferiores = p.Localizacao.MembrosInferiores
	out.Ferimento = keepString(p.Ferimento, out.Ferimento)
	out.FerimentoTipo.Profundo = p.FerimentoTipo.Profundo
	out.FerimentoTipo.Superficial = p.FerimentoTipo.Superficial
	out.FerimentoTipo.Dilacerante = p.FerimentoTipo.Dilacerante
	out.DataExposicao = keepString(p.DataExposicao, out.DataExposicao)
	out.AntecedentesTratamento = keepString(p.AntecedentesTratamento, out.AntecedentesTratamento)
	out.AntecedentesTipo = keepString(p.AntecedentesTipo, out.AntecedentesTipo)
	out.ConcluidoQuando = keepString(p.ConcluidoQuando, out.ConcluidoQuando)
	out.NumeroDoses = keepString(p.NumeroDoses, out.NumeroDoses)
	out.EspecieAnimal = keepString(p.EspecieAnimal, out.EspecieAnimal)
	out.EspecieAnimalOutro = keepString(p.EspecieAnimalOutro, out.EspecieAnimalOutro)
	out.CondicaoAnimal = keepString(p.CondicaoAnimal, out.CondicaoAnimal)
	out.AnimalObservavel = keepString(p.AnimalObservavel, out.AnimalObservavel)

	// Tratamento atual
	out.TratamentoIndicado = keepString(p.TratamentoIndicado, out.TratamentoIndicado)
	out.VacinaLaboratorio = keepString(p.VacinaLaboratorio, out.VacinaLaboratorio)
	out.VacinaLaboratorioOutro = keepString(p.VacinaLaboratorioOutro, out.VacinaLaboratorioOutro)
	out.VacinaLote = keepString(p.VacinaLote, out.VacinaLote)
	out.VacinaVencimento = keepString(p.VacinaVencimento, out.VacinaVencimento)
	out.VacinaDosesDatas.Dose1 = keepString(p.VacinaDosesDatas.Dose1, out.VacinaDosesDatas.Dose1)
	out.VacinaDosesDatas.Dose2 = keepString(p.VacinaDosesDatas.Dose2, out.VacinaDosesDatas.Dose2)
	out.VacinaDosesDatas.Dose3 = keepString(p.VacinaDosesDatas.Dose3, out.VacinaDosesDatas.Dose3)
	out.VacinaDosesDatas.Dose4 = keepString(p.VacinaDosesDatas.Dose4, out.VacinaDosesDatas.Dose4)
	out.VacinaDosesDatas.Dose5 = keepString(p.VacinaDosesDatas.Dose5, out.VacinaDosesDatas.Dose5)

	// Conclusao e eventos
	out.CondicaoFinalAnimal = keepString(p.CondicaoFinalAnimal, out.CondicaoFinalAnimal)
	out.InterrupcaoTratamento = keepString(p.InterrupcaoTratamento, out.InterrupcaoTratamento)
	out.MotivoInterrupcao = keepString(p.MotivoInterrupcao, out.MotivoInterrupcao)
	out.UnidadeProcurouPaciente = keepString(p.UnidadeProcurouPaciente, out.UnidadeProcurouPaciente)
	out.EventoAdversoVacina = keepString(p.EventoAdversoVacina, out.EventoAdversoVacina)

	// Soro antirrabico
	out.IndicacaoSoro = keepString(p.IndicacaoSoro, out.IndicacaoSoro)
	out.PesoPaciente = keepString(p.PesoPaciente, out.PesoPaciente)
	out.QuantidadeSoro = keepString(p.QuantidadeSoro, out.QuantidadeSoro)
	out.SoroTipo = keepString(p.SoroTipo, out.SoroTipo)
	out.InfiltracaoSoro = keepString(p.InfiltracaoSoro, out.InfiltracaoSoro)
	out.InfiltracaoExtensao = keepString(p.InfiltracaoExtensao, out.InfiltracaoExtensao)
	out.SoroLaboratorio = keepString(p.SoroLaboratorio, out.SoroLaboratorio)
	out.SoroLaboratorioOutro = keepString(p.SoroLaboratorioOutro, out.SoroLaboratorioOutro)
	out.SoroPartida = keepString(p.SoroPartida, out.SoroPartida)
	out.SoroAplicado = p.SoroAplicado
	out.SoroAplicadoEm = keepString(p.SoroAplicadoEm, out.SoroAplicadoEm)
	out.EventoAdversoSoro = keepString(p.EventoAdversoSoro, out.EventoAdversoSoro)
	out.DataEncerramento = keepString(p.DataEncerramento, out.DataEncerramento)
	out.Observacoes = keepString(p.Observacoes, out.Observacoes)

	// Investigador
	out.InvestigadorUnidade = keepString(p.InvestigadorUnidade, out.InvestigadorUnidade)
	out.InvestigadorCodigoUnidade = keepString(p.InvestigadorCodigoUnidade, out.InvestigadorCodigoUnidade)
	out.InvestigadorNome = keepString(p.InvestigadorNome, out.InvestigadorNome)
	out.InvestigadorFuncao = keepString(p.InvestigadorFuncao, out.InvestigadorFuncao)

	out.Extra = p.Extra

	return out
}

func keepString(stored, fallback string) string {
	if stored != "" {
		return stored
	}
	return fallback
}
