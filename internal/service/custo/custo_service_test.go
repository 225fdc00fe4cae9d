package custo

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"react-golang/internal/storage"
)

type MockCustoStorage struct {
	mock.Mock
}

func (m *MockCustoStorage) GetResultado(ctx context.Context, id string) (*storage.ResultadoCalculo, error) {
	args := m.Called(ctx, id)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	resultado, ok := args.Get(0).(*storage.ResultadoCalculo)
	if !ok {
		return nil, fmt.Errorf("expected *storage.ResultadoCalculo, got %T", args.Get(0))
	}

	return resultado, args.Error(1)
}

func (m *MockCustoStorage) GetAllProdutos(ctx context.Context) ([]*storage.Produto, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	produtos, ok := args.Get(0).([]*storage.Produto)
	if !ok {
		return nil, fmt.Errorf("expected []*storage.Produto, got %T", args.Get(0))
	}

	return produtos, args.Error(1)
}

func ptrF(v float64) *float64 { return &v }
func ptrS(v string) *string   { return &v }

func TestCustoProdutosCalculo(t *testing.T) {
	produtos := []*storage.Produto{
		{ID: "ml-1", UnidadeMedida: "ml", CustoPorUnidade: 0.05},
		{ID: "lt-1", UnidadeMedida: "litros", CustoPorUnidade: 30.0},
	}

	tests := []struct {
		name      string
		resultado *storage.ResultadoCalculo
		want      float64
	}{
		{
			name: "produto em ml multiplica direto",
			resultado: &storage.ResultadoCalculo{
				ResultadosProdutos: []storage.ResultadoProduto{
					{ProdutoID: "ml-1", QuantidadeProduto: 200},
				},
			},
			want: 10.0, // 200ml × 0.05/ml
		},
		{
			name: "produto em litros converte ml antes",
			resultado: &storage.ResultadoCalculo{
				ResultadosProdutos: []storage.ResultadoProduto{
					{ProdutoID: "lt-1", QuantidadeProduto: 2000},
				},
			},
			want: 60.0, // 2000ml = 2L × 30/L
		},
		{
			name: "linhas somadas",
			resultado: &storage.ResultadoCalculo{
				ResultadosProdutos: []storage.ResultadoProduto{
					{ProdutoID: "ml-1", QuantidadeProduto: 200},
					{ProdutoID: "lt-1", QuantidadeProduto: 500},
				},
			},
			want: 25.0, // 10 + 15
		},
		{
			name: "produto apagado do catálogo contribui zero",
			resultado: &storage.ResultadoCalculo{
				ResultadosProdutos: []storage.ResultadoProduto{
					{ProdutoID: "nao-existe", QuantidadeProduto: 500},
					{ProdutoID: "ml-1", QuantidadeProduto: 100},
				},
			},
			want: 5.0,
		},
		{
			name:      "cálculo sem linhas",
			resultado: &storage.ResultadoCalculo{},
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CustoProdutosCalculo(tt.resultado, produtos)
			if got != tt.want {
				t.Errorf("CustoProdutosCalculo() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCustoProdutos_CalculoInexistente(t *testing.T) {
	mockStorage := new(MockCustoStorage)

	// Cálculo apagado do histórico: custo zero, nunca erro.
	mockStorage.On("GetResultado", mock.Anything, "calc-sumido").
		Return((*storage.ResultadoCalculo)(nil), nil)
	mockStorage.On("GetAllProdutos", mock.Anything).Return([]*storage.Produto{}, nil)

	service := NewCustoService(mockStorage)

	custo, err := service.CustoProdutos(context.Background(), "calc-sumido")

	assert.NoError(t, err)
	assert.Equal(t, 0.0, custo)
	mockStorage.AssertExpectations(t)
}

func TestCustoProdutos_ErroDeBanco(t *testing.T) {
	mockStorage := new(MockCustoStorage)

	mockStorage.On("GetResultado", mock.Anything, "calc-1").
		Return((*storage.ResultadoCalculo)(nil), errors.New("banco indisponível"))
	mockStorage.On("GetAllProdutos", mock.Anything).Return([]*storage.Produto{}, nil).Maybe()

	service := NewCustoService(mockStorage)

	_, err := service.CustoProdutos(context.Background(), "calc-1")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "resultado:")
}

func TestCalcularLucro(t *testing.T) {
	tests := []struct {
		name    string
		servico storage.Servico
		want    float64
	}{
		{
			name: "receita menos custos",
			servico: storage.Servico{
				CustoProdutos:  20,
				CustoMaoDeObra: ptrF(50),
				PrecoVenda:     ptrF(200),
			},
			want: 130,
		},
		{
			name: "sem mão de obra",
			servico: storage.Servico{
				CustoProdutos: 20,
				PrecoVenda:    ptrF(200),
			},
			want: 180,
		},
		{
			name: "sem preço de venda o lucro é negativo",
			servico: storage.Servico{
				CustoProdutos:  20,
				CustoMaoDeObra: ptrF(30),
			},
			want: -50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcularLucro(&tt.servico)
			if got != tt.want {
				t.Errorf("CalcularLucro() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecalcularDerivados(t *testing.T) {
	mockStorage := new(MockCustoStorage)

	resultado := &storage.ResultadoCalculo{
		ResultadosProdutos: []storage.ResultadoProduto{
			{ProdutoID: "p1", QuantidadeProduto: 400},
		},
	}
	produtos := []*storage.Produto{
		{ID: "p1", UnidadeMedida: "ml", CustoPorUnidade: 0.05},
	}

	mockStorage.On("GetResultado", mock.Anything, "calc-1").Return(resultado, nil)
	mockStorage.On("GetAllProdutos", mock.Anything).Return(produtos, nil)

	service := NewCustoService(mockStorage)

	servico := &storage.Servico{
		CustoProdutos:  999, // valor vindo do request é descartado
		Lucro:          ptrF(999),
		CustoMaoDeObra: ptrF(80),
		PrecoVenda:     ptrF(300),
		CalculoID:      ptrS("calc-1"),
	}

	err := service.RecalcularDerivados(context.Background(), servico)

	assert.NoError(t, err)
	assert.Equal(t, 20.0, servico.CustoProdutos) // 400ml × 0.05
	assert.NotNil(t, servico.Lucro)
	assert.Equal(t, 200.0, *servico.Lucro) // 300 − (20 + 80)
}

func TestRecalcularDerivados_SemCalculoNemPreco(t *testing.T) {
	mockStorage := new(MockCustoStorage)
	service := NewCustoService(mockStorage)

	servico := &storage.Servico{
		CustoProdutos: 999,
		Lucro:         ptrF(999),
	}

	err := service.RecalcularDerivados(context.Background(), servico)

	assert.NoError(t, err)
	assert.Equal(t, 0.0, servico.CustoProdutos)
	assert.Nil(t, servico.Lucro)
	// Sem cálculo vinculado, o banco nem é consultado.
	mockStorage.AssertNotCalled(t, "GetResultado")
}

func clienteComServicos(nome string, servicos ...storage.Servico) *storage.Cliente {
	return &storage.Cliente{
		ID:       "cli-" + nome,
		Nome:     nome,
		Servicos: servicos,
	}
}

func TestCalcularEstatisticas(t *testing.T) {
	clientes := []*storage.Cliente{
		clienteComServicos("Ana",
			storage.Servico{
				CustoProdutos:  10,
				CustoMaoDeObra: ptrF(40),
				PrecoVenda:     ptrF(150),
				Lucro:          ptrF(100),
				DataServico:    ptrS("2026-03-10"),
			},
			storage.Servico{
				CustoProdutos: 5,
				PrecoVenda:    ptrF(80),
				Lucro:         ptrF(75),
				DataServico:   ptrS("2026-03-22"),
			},
		),
		clienteComServicos("Bruno",
			storage.Servico{
				CustoProdutos:  20,
				CustoMaoDeObra: ptrF(30),
				// Orçamento ainda sem preço fechado: sem receita nem lucro.
				DataServico: ptrS("2026-04-01"),
			},
		),
	}

	est := CalcularEstatisticas(clientes, "")

	assert.Equal(t, 2, est.TotalClientes)
	assert.Equal(t, 3, est.TotalServicos)
	assert.Equal(t, 105.0, est.CustoTotal)   // (10+40) + 5 + (20+30)
	assert.Equal(t, 230.0, est.ReceitaTotal) // 150 + 80
	assert.Equal(t, 175.0, est.LucroTotal)
	assert.InDelta(t, 76.09, est.MargemLucro, 0.01) // 175/230 × 100
}

func TestCalcularEstatisticas_FiltroPorData(t *testing.T) {
	clientes := []*storage.Cliente{
		clienteComServicos("Ana",
			storage.Servico{
				CustoProdutos: 10,
				PrecoVenda:    ptrF(100),
				Lucro:         ptrF(90),
				DataServico:   ptrS("2026-03-10"),
			},
			storage.Servico{
				CustoProdutos: 5,
				PrecoVenda:    ptrF(50),
				Lucro:         ptrF(45),
				DataServico:   ptrS("2026-03-22"),
			},
			storage.Servico{
				CustoProdutos: 7,
				PrecoVenda:    ptrF(70),
				Lucro:         ptrF(63),
				// Serviço sem data nunca bate num filtro.
			},
		),
	}

	est := CalcularEstatisticas(clientes, "2026-03-10")

	assert.Equal(t, 1, est.TotalServicos)
	assert.Equal(t, 100.0, est.ReceitaTotal)
	assert.Equal(t, 90.0, est.LucroTotal)
}

func TestCalcularEstatisticas_SemReceita(t *testing.T) {
	clientes := []*storage.Cliente{
		clienteComServicos("Bruno",
			storage.Servico{CustoProdutos: 20},
		),
	}

	est := CalcularEstatisticas(clientes, "")

	// Receita zero: margem fica em 0, sem divisão por zero.
	assert.Equal(t, 0.0, est.MargemLucro)
	assert.Equal(t, 20.0, est.CustoTotal)
}

func TestAgruparPorMes(t *testing.T) {
	clientes := []*storage.Cliente{
		clienteComServicos("Ana",
			storage.Servico{
				CustoProdutos: 10,
				PrecoVenda:    ptrF(100),
				Lucro:         ptrF(90),
				DataServico:   ptrS("2026-03-10"),
			},
			storage.Servico{
				CustoProdutos: 5,
				PrecoVenda:    ptrF(50),
				Lucro:         ptrF(45),
				DataServico:   ptrS("2026-03-22"),
			},
			storage.Servico{
				CustoProdutos: 8,
				PrecoVenda:    ptrF(60),
				Lucro:         ptrF(52),
				DataServico:   ptrS("2026-04-02"),
			},
		),
		clienteComServicos("Bruno",
			storage.Servico{
				CustoProdutos: 12,
				PrecoVenda:    ptrF(90),
				Lucro:         ptrF(78),
				// Sem data: fora do agrupamento mensal.
			},
		),
	}

	resumos := AgruparPorMes(clientes)

	assert.Len(t, resumos, 2)

	// Mais recente primeiro.
	assert.Equal(t, "2026-04", resumos[0].MesAno)
	assert.Equal(t, 1, resumos[0].TotalServicos)
	assert.Equal(t, 60.0, resumos[0].ReceitaTotal)

	assert.Equal(t, "2026-03", resumos[1].MesAno)
	assert.Equal(t, 2, resumos[1].TotalServicos)
	assert.Equal(t, 150.0, resumos[1].ReceitaTotal)
	assert.Equal(t, 135.0, resumos[1].LucroTotal)
	assert.Equal(t, 15.0, resumos[1].CustoTotal)
}

func TestAgruparPorMes_DataIlegivel(t *testing.T) {
	clientes := []*storage.Cliente{
		clienteComServicos("Ana",
			storage.Servico{
				CustoProdutos: 10,
				DataServico:   ptrS("10/03/2026"),
			},
		),
	}

	resumos := AgruparPorMes(clientes)

	assert.Empty(t, resumos)
}

func TestEstatisticasCliente(t *testing.T) {
	cliente := clienteComServicos("Ana",
		storage.Servico{
			CustoProdutos: 10,
			PrecoVenda:    ptrF(100),
			Lucro:         ptrF(90),
		},
	)

	est := EstatisticasCliente(cliente)

	assert.Equal(t, 1, est.TotalClientes)
	assert.Equal(t, 1, est.TotalServicos)
	assert.Equal(t, 100.0, est.ReceitaTotal)
	assert.Equal(t, 90.0, est.LucroTotal)
}
