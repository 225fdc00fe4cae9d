package storage

// DimensoesEstofado em centímetros.
//   - Largura: largura do estofado
//   - Comprimento: comprimento (colchões) ou profundidade do assento (sofás)
//   - Profundidade: altura do colchão ou altura do encosto
type DimensoesEstofado struct {
	Largura      float64 `json:"largura"`
	Comprimento  float64 `json:"comprimento"`
	Profundidade float64 `json:"profundidade"`
}

type PresetEstofado struct {
	Tipo      TipoEstofado      `json:"tipo"`
	Nome      string            `json:"nome"`
	Dimensoes DimensoesEstofado `json:"dimensoes"`
}

type CalculoInput struct {
	TipoEstofado         TipoEstofado      `json:"tipoEstofado"`
	Dimensoes            DimensoesEstofado `json:"dimensoes"`
	NivelSujidade        NivelSujidade     `json:"nivelSujidade"`
	ProdutosSelecionados []string          `json:"produtosSelecionados"`
}

// ResultadoProduto é a linha por produto do cálculo. Nome e proporção
// são snapshots do momento do cálculo — não acompanham edições
// posteriores do produto.
type ResultadoProduto struct {
	ProdutoID         string  `json:"produtoId"`
	ProdutoNome       string  `json:"produtoNome"`
	QuantidadeProduto float64 `json:"quantidadeProduto"` // ml
	QuantidadeAgua    float64 `json:"quantidadeAgua"`    // ml
	Proporcao         string  `json:"proporcao"`
}

// ResultadoCalculo é imutável depois de criado; só pode ser apagado.
type ResultadoCalculo struct {
	ID                 string             `json:"id"`
	Input              CalculoInput       `json:"input"`
	AreaTotal          float64            `json:"areaTotal"`          // m², 2 casas
	QuantidadeSolucao  float64            `json:"quantidadeSolucao"`  // litros, 2 casas
	ResultadosProdutos []ResultadoProduto `json:"resultadosProdutos"`
	TempoEstimado      *int               `json:"tempoEstimado,omitempty"` // minutos
	CreatedAt          string             `json:"createdAt"`
	ClienteNome        *string            `json:"clienteNome,omitempty"`
}
