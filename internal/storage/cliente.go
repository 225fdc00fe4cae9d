package storage

type Cliente struct {
	ID          string    `json:"id"`
	Nome        string    `json:"nome"`
	Telefone    *string   `json:"telefone,omitempty"`
	Endereco    *string   `json:"endereco,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Observacoes *string   `json:"observacoes,omitempty"`
	Servicos    []Servico `json:"servicos"`
	CreatedAt   string    `json:"createdAt"`
	UpdatedAt   string    `json:"updatedAt"`
}

// Servico é a unidade faturável de um cliente. CustoProdutos e Lucro são
// derivados e recalculados em todo save (ver service/custo) — nunca
// aceitos do cliente como vieram.
type Servico struct {
	ID             string   `json:"id"`
	ClienteID      string   `json:"clienteId"`
	Tipo           string   `json:"tipo"`
	Descricao      string   `json:"descricao"`
	Observacoes    *string  `json:"observacoes,omitempty"`
	CustoProdutos  float64  `json:"custoProdutos"`
	CustoMaoDeObra *float64 `json:"custoMaoDeObra,omitempty"`
	PrecoVenda     *float64 `json:"precoVenda,omitempty"`
	Lucro          *float64 `json:"lucro,omitempty"`
	CalculoID      *string  `json:"calculoId,omitempty"`
	DataServico    *string  `json:"dataServico,omitempty"` // "2006-01-02"
	CreatedAt      string   `json:"createdAt"`
}
