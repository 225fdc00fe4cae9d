package storage

type NivelSujidade string

const (
	NivelLeve     NivelSujidade = "leve"
	NivelModerado NivelSujidade = "moderado"
	NivelPesado   NivelSujidade = "pesado"
	NivelExtremo  NivelSujidade = "extremo"
)

type TipoEstofado string

const (
	TipoSofa2Lugares    TipoEstofado = "sofa-2-lugares"
	TipoSofa3Lugares    TipoEstofado = "sofa-3-lugares"
	TipoSofaL           TipoEstofado = "sofa-l"
	TipoSofaRetratil    TipoEstofado = "sofa-retratil"
	TipoColchaoSolteiro TipoEstofado = "colchao-solteiro"
	TipoColchaoCasal    TipoEstofado = "colchao-casal"
	TipoColchaoQueen    TipoEstofado = "colchao-queen"
	TipoColchaoKing     TipoEstofado = "colchao-king"
	TipoPoltrona        TipoEstofado = "poltrona"
	TipoCadeiraEstofada TipoEstofado = "cadeira-estofada"
	TipoPuff            TipoEstofado = "puff"
	TipoCabeceira       TipoEstofado = "cabeceira"
	TipoBancoCarro      TipoEstofado = "banco-carro"
	TipoOutro           TipoEstofado = "outro"
)

// Diluicao é uma entrada da tabela de diluição do produto.
// Proporcao no formato "1:20" (produto:água).
type Diluicao struct {
	Nivel     NivelSujidade `json:"nivel"`
	Proporcao string        `json:"proporcao"`
}

type Produto struct {
	ID         string     `json:"id"`
	Nome       string     `json:"nome"`
	Fabricante *string    `json:"fabricante,omitempty"`
	Diluicoes  []Diluicao `json:"diluicoes"`

	// Lista vazia = compatível com todos os tipos.
	TiposEstofadoCompativel []TipoEstofado `json:"tiposEstofadoCompativel"`

	UnidadeMedida       string  `json:"unidadeMedida"` // "ml" ou "litros"
	ValorPago           float64 `json:"valorPago"`
	QuantidadeEmbalagem float64 `json:"quantidadeEmbalagem"`
	// Custo por ml ou litro. Derivado: valorPago / quantidadeEmbalagem,
	// recalculado em todo save — nunca confiado como veio do cliente.
	CustoPorUnidade float64 `json:"custoPorUnidade"`
	// ml de solução diluída por m² recomendado pelo fabricante.
	// 0 = usar o cálculo padrão de água pela área.
	RendimentoPorM2 float64 `json:"rendimentoPorM2"`
	Observacoes     *string `json:"observacoes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// DiluicaoPara devolve a entrada de diluição do nível, ou nil se o
// produto não atende esse nível de sujidade.
func (p *Produto) DiluicaoPara(nivel NivelSujidade) *Diluicao {
	for i := range p.Diluicoes {
		if p.Diluicoes[i].Nivel == nivel {
			return &p.Diluicoes[i]
		}
	}
	return nil
}

// RecalcularCusto refaz o custo por unidade a partir do valor pago e da
// quantidade da embalagem. Chamado em todo caminho de gravação.
func (p *Produto) RecalcularCusto() {
	if p.QuantidadeEmbalagem > 0 {
		p.CustoPorUnidade = p.ValorPago / p.QuantidadeEmbalagem
	} else {
		p.CustoPorUnidade = 0
	}
}
