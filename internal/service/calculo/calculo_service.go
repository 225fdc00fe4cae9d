package calculo

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"react-golang/internal/storage"
)

// Minutos de mão de obra estimados por m² de estofado.
const MinutosPorM2 = 5.0

type CalculoStorage interface {
	GetProdutosByIDs(ctx context.Context, ids []string) ([]*storage.Produto, error)
	GetFatorAgua(ctx context.Context) (float64, error)
	SaveResultado(ctx context.Context, resultado *storage.ResultadoCalculo) error
}

type CalculoService struct {
	storage CalculoStorage
	log     *slog.Logger

	// Usado quando o coeficiente ainda não existe no banco.
	fatorAguaPadrao float64
}

func NewCalculoService(storage CalculoStorage, log *slog.Logger, fatorAguaPadrao float64) *CalculoService {
	return &CalculoService{
		storage:         storage,
		log:             log,
		fatorAguaPadrao: fatorAguaPadrao,
	}
}

// CalcularResultado monta o resultado completo do cálculo: área, água
// padrão (proporcional só à área — independe da sujidade e dos produtos),
// diluição por produto selecionado e tempo estimado.
//
// Produto selecionado que não existe mais no catálogo é pulado em
// silêncio; produto sem diluição para o nível também. Lista vazia de
// resultados é um resultado válido.
func (s *CalculoService) CalcularResultado(ctx context.Context, input storage.CalculoInput) (*storage.ResultadoCalculo, error) {
	const op = "service.calculo.CalcularResultado"

	if !TipoConhecido(input.TipoEstofado) {
		s.log.Warn("tipo de estofado fora da tabela, usando fórmula de assento",
			slog.String("op", op),
			slog.String("tipo", string(input.TipoEstofado)),
		)
	}

	area, err := CalcularArea(input.Dimensoes, input.TipoEstofado)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var (
		produtos  []*storage.Produto
		fatorAgua float64
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		produtos, err = s.storage.GetProdutosByIDs(gCtx, input.ProdutosSelecionados)
		if err != nil {
			return fmt.Errorf("produtos: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		fatorAgua, err = s.storage.GetFatorAgua(gCtx)
		if err != nil {
			return fmt.Errorf("fator de água: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if fatorAgua <= 0 {
		fatorAgua = s.fatorAguaPadrao
	}

	quantidadeAgua := area * fatorAgua // litros

	porID := make(map[string]*storage.Produto, len(produtos))
	for _, p := range produtos {
		porID[p.ID] = p
	}

	// Mantém a ordem da seleção.
	resultados := make([]storage.ResultadoProduto, 0, len(input.ProdutosSelecionados))
	for _, produtoID := range input.ProdutosSelecionados {
		produto, ok := porID[produtoID]
		if !ok {
			// Catálogo pode ter sido editado desde a seleção.
			continue
		}

		resultado := CalcularDiluicaoProduto(produto, quantidadeAgua, input.NivelSujidade, area)
		if resultado == nil {
			continue
		}

		resultados = append(resultados, *resultado)
	}

	tempoEstimado := int(math.Ceil(area * MinutosPorM2))

	return &storage.ResultadoCalculo{
		ID:                 uuid.NewString(),
		Input:              input,
		AreaTotal:          Round2(area),
		QuantidadeSolucao:  Round2(quantidadeAgua),
		ResultadosProdutos: resultados,
		TempoEstimado:      &tempoEstimado,
		CreatedAt:          time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// SalvarResultado persiste um resultado recém-calculado. Resultados são
// imutáveis: nunca há update, só insert e delete.
func (s *CalculoService) SalvarResultado(ctx context.Context, resultado *storage.ResultadoCalculo) error {
	const op = "service.calculo.SalvarResultado"

	if err := s.storage.SaveResultado(ctx, resultado); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
