package custo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"react-golang/internal/service/calculo"
	"react-golang/internal/storage"
)

type CustoStorage interface {
	GetResultado(ctx context.Context, id string) (*storage.ResultadoCalculo, error)
	GetAllProdutos(ctx context.Context) ([]*storage.Produto, error)
}

type CustoService struct {
	storage CustoStorage
}

func NewCustoService(storage CustoStorage) *CustoService {
	return &CustoService{storage: storage}
}

// CustoProdutos calcula o custo monetário dos produtos usados num cálculo
// já gravado, contra o catálogo ATUAL (não o snapshot). Cálculo ou
// produto que não existe mais contribui com zero — referência velha é
// tolerada, nunca erro.
func (s *CustoService) CustoProdutos(ctx context.Context, calculoID string) (float64, error) {
	const op = "service.custo.CustoProdutos"

	var (
		resultado *storage.ResultadoCalculo
		produtos  []*storage.Produto
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		resultado, err = s.storage.GetResultado(gCtx, calculoID)
		if err != nil {
			return fmt.Errorf("resultado: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		produtos, err = s.storage.GetAllProdutos(gCtx)
		if err != nil {
			return fmt.Errorf("produtos: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if resultado == nil {
		return 0, nil
	}

	return CustoProdutosCalculo(resultado, produtos), nil
}

// CustoProdutosCalculo é a parte pura: soma linha a linha o custo do
// produto no catálogo informado, arredondado para 2 casas no final.
// Produto vendido por litro converte os ml da linha antes de multiplicar
// pelo custo por unidade.
func CustoProdutosCalculo(resultado *storage.ResultadoCalculo, produtos []*storage.Produto) float64 {
	porID := make(map[string]*storage.Produto, len(produtos))
	for _, p := range produtos {
		porID[p.ID] = p
	}

	var custoTotal float64
	for _, linha := range resultado.ResultadosProdutos {
		produto, ok := porID[linha.ProdutoID]
		if !ok {
			continue
		}

		quantidadeNaUnidade := linha.QuantidadeProduto
		if produto.UnidadeMedida == "litros" {
			quantidadeNaUnidade = linha.QuantidadeProduto / 1000
		}

		custoTotal += quantidadeNaUnidade * produto.CustoPorUnidade
	}

	return calculo.Round2(custoTotal)
}

// CalcularLucro: receita menos custo total (produtos + mão de obra).
// Sem arredondamento aqui; quem exibe arredonda.
func CalcularLucro(servico *storage.Servico) float64 {
	custoTotal := servico.CustoProdutos
	if servico.CustoMaoDeObra != nil {
		custoTotal += *servico.CustoMaoDeObra
	}

	var receita float64
	if servico.PrecoVenda != nil {
		receita = *servico.PrecoVenda
	}

	return receita - custoTotal
}

// RecalcularDerivados é o passo único de recomputação dos campos
// derivados do serviço, chamado em TODO save/update antes de persistir.
// Nunca se confia no custoProdutos/lucro que veio no request.
func (s *CustoService) RecalcularDerivados(ctx context.Context, servico *storage.Servico) error {
	const op = "service.custo.RecalcularDerivados"

	servico.CustoProdutos = 0
	if servico.CalculoID != nil && *servico.CalculoID != "" {
		custo, err := s.CustoProdutos(ctx, *servico.CalculoID)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		servico.CustoProdutos = custo
	}

	if servico.PrecoVenda != nil {
		lucro := CalcularLucro(servico)
		servico.Lucro = &lucro
	} else {
		servico.Lucro = nil
	}

	return nil
}

type Estatisticas struct {
	CustoTotal    float64 `json:"custoTotal"`
	ReceitaTotal  float64 `json:"receitaTotal"`
	LucroTotal    float64 `json:"lucroTotal"`
	MargemLucro   float64 `json:"margemLucro"` // %
	TotalServicos int     `json:"totalServicos"`
	TotalClientes int     `json:"totalClientes"`
}

type ResumoMensal struct {
	MesAno        string  `json:"mesAno"` // "2025-03"
	CustoTotal    float64 `json:"custoTotal"`
	ReceitaTotal  float64 `json:"receitaTotal"`
	LucroTotal    float64 `json:"lucroTotal"`
	TotalServicos int     `json:"totalServicos"`
}

// CalcularEstatisticas soma custo, receita e lucro de todos os serviços,
// opcionalmente filtrados pela data exata. Serviço sem data entra nos
// totais gerais (só fica de fora do agrupamento mensal).
func CalcularEstatisticas(clientes []*storage.Cliente, filtroData string) Estatisticas {
	est := Estatisticas{TotalClientes: len(clientes)}

	for _, cliente := range clientes {
		for i := range cliente.Servicos {
			servico := &cliente.Servicos[i]

			if filtroData != "" {
				if servico.DataServico == nil || *servico.DataServico != filtroData {
					continue
				}
			}

			est.CustoTotal += custoServico(servico)
			if servico.PrecoVenda != nil {
				est.ReceitaTotal += *servico.PrecoVenda
			}
			if servico.Lucro != nil {
				est.LucroTotal += *servico.Lucro
			}
			est.TotalServicos++
		}
	}

	if est.ReceitaTotal > 0 {
		est.MargemLucro = est.LucroTotal / est.ReceitaTotal * 100
	}

	return est
}

// AgruparPorMes agrupa os serviços pela chave (ano, mês) da data do
// serviço. Serviço sem data não entra em nenhum mês. Resultado ordenado
// do mês mais recente para o mais antigo.
func AgruparPorMes(clientes []*storage.Cliente) []ResumoMensal {
	agrupados := make(map[string]*ResumoMensal)

	for _, cliente := range clientes {
		for i := range cliente.Servicos {
			servico := &cliente.Servicos[i]
			if servico.DataServico == nil {
				continue
			}

			data, err := time.Parse("2006-01-02", *servico.DataServico)
			if err != nil {
				continue
			}

			mesAno := data.Format("2006-01")
			resumo, ok := agrupados[mesAno]
			if !ok {
				resumo = &ResumoMensal{MesAno: mesAno}
				agrupados[mesAno] = resumo
			}

			resumo.CustoTotal += custoServico(servico)
			if servico.PrecoVenda != nil {
				resumo.ReceitaTotal += *servico.PrecoVenda
			}
			if servico.Lucro != nil {
				resumo.LucroTotal += *servico.Lucro
			}
			resumo.TotalServicos++
		}
	}

	resumos := make([]ResumoMensal, 0, len(agrupados))
	for _, r := range agrupados {
		resumos = append(resumos, *r)
	}

	sort.Slice(resumos, func(i, j int) bool {
		return resumos[i].MesAno > resumos[j].MesAno
	})

	return resumos
}

// EstatisticasCliente é o mesmo rollup restrito aos serviços de um único
// cliente.
func EstatisticasCliente(cliente *storage.Cliente) Estatisticas {
	return CalcularEstatisticas([]*storage.Cliente{cliente}, "")
}

func custoServico(servico *storage.Servico) float64 {
	custo := servico.CustoProdutos
	if servico.CustoMaoDeObra != nil {
		custo += *servico.CustoMaoDeObra
	}
	return custo
}
