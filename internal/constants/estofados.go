package constants

import "react-golang/internal/storage"

// Classe geométrica de cada tipo de estofado. Tudo que não estiver
// aqui é tratado como "assento" (sofás, poltronas, etc).
const (
	GeometriaColchao = "colchao"
	GeometriaAssento = "assento"
)

var (
	// GeometriaPorTipo substitui a antiga inferência por prefixo de nome
	// ("colchao-*"). A tabela é a fonte única da classe geométrica.
	GeometriaPorTipo = map[storage.TipoEstofado]string{
		storage.TipoSofa2Lugares:    GeometriaAssento,
		storage.TipoSofa3Lugares:    GeometriaAssento,
		storage.TipoSofaL:           GeometriaAssento,
		storage.TipoSofaRetratil:    GeometriaAssento,
		storage.TipoColchaoSolteiro: GeometriaColchao,
		storage.TipoColchaoCasal:    GeometriaColchao,
		storage.TipoColchaoQueen:    GeometriaColchao,
		storage.TipoColchaoKing:     GeometriaColchao,
		storage.TipoPoltrona:        GeometriaAssento,
		storage.TipoCadeiraEstofada: GeometriaAssento,
		storage.TipoPuff:            GeometriaAssento,
		storage.TipoCabeceira:       GeometriaAssento,
		storage.TipoBancoCarro:      GeometriaAssento,
		storage.TipoOutro:           GeometriaAssento,
	}

	TiposEstofadoLabels = map[storage.TipoEstofado]string{
		storage.TipoSofa2Lugares:    "Sofá 2 lugares",
		storage.TipoSofa3Lugares:    "Sofá 3 lugares",
		storage.TipoSofaL:           "Sofá L",
		storage.TipoSofaRetratil:    "Sofá Retrátil",
		storage.TipoColchaoSolteiro: "Colchão Solteiro",
		storage.TipoColchaoCasal:    "Colchão Casal",
		storage.TipoColchaoQueen:    "Colchão Queen",
		storage.TipoColchaoKing:     "Colchão King",
		storage.TipoPoltrona:        "Poltrona",
		storage.TipoCadeiraEstofada: "Cadeira Estofada",
		storage.TipoPuff:            "Puff",
		storage.TipoCabeceira:       "Cabeceira",
		storage.TipoBancoCarro:      "Banco de Carro",
		storage.TipoOutro:           "Outro",
	}

	NiveisSujidadeLabels = map[storage.NivelSujidade]string{
		storage.NivelLeve:     "Leve",
		storage.NivelModerado: "Moderado",
		storage.NivelPesado:   "Pesado",
		storage.NivelExtremo:  "Extremo",
	}

	TiposServicoLabels = map[string]string{
		"higienizacao":      "Higienização",
		"impermeabilizacao": "Impermeabilização",
		"colchao":           "Colchão",
		"sofa":              "Sofá",
		"poltrona":          "Poltrona",
		"cadeira":           "Cadeira",
		"puff":              "Puff",
		"outro":             "Outro",
	}
)

// PresetsEstofados são as dimensões padrão oferecidas na calculadora.
var PresetsEstofados = []storage.PresetEstofado{
	{Tipo: storage.TipoSofa2Lugares, Nome: "Sofá 2 lugares", Dimensoes: storage.DimensoesEstofado{Largura: 150, Comprimento: 90, Profundidade: 80}},
	{Tipo: storage.TipoSofa3Lugares, Nome: "Sofá 3 lugares", Dimensoes: storage.DimensoesEstofado{Largura: 200, Comprimento: 90, Profundidade: 80}},
	{Tipo: storage.TipoColchaoSolteiro, Nome: "Colchão Solteiro", Dimensoes: storage.DimensoesEstofado{Largura: 190, Comprimento: 90, Profundidade: 25}},
	{Tipo: storage.TipoColchaoCasal, Nome: "Colchão Casal", Dimensoes: storage.DimensoesEstofado{Largura: 190, Comprimento: 140, Profundidade: 25}},
	{Tipo: storage.TipoColchaoQueen, Nome: "Colchão Queen", Dimensoes: storage.DimensoesEstofado{Largura: 200, Comprimento: 160, Profundidade: 30}},
	{Tipo: storage.TipoColchaoKing, Nome: "Colchão King", Dimensoes: storage.DimensoesEstofado{Largura: 200, Comprimento: 190, Profundidade: 30}},
	{Tipo: storage.TipoPoltrona, Nome: "Poltrona", Dimensoes: storage.DimensoesEstofado{Largura: 80, Comprimento: 80, Profundidade: 90}},
	{Tipo: storage.TipoCadeiraEstofada, Nome: "Cadeira Estofada", Dimensoes: storage.DimensoesEstofado{Largura: 50, Comprimento: 50, Profundidade: 80}},
	{Tipo: storage.TipoPuff, Nome: "Puff", Dimensoes: storage.DimensoesEstofado{Largura: 60, Comprimento: 60, Profundidade: 40}},
}
