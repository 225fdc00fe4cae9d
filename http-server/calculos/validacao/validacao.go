package validacao

import (
	"log/slog"
	"math"
	"net/http"

	"github.com/go-chi/render"

	"react-golang/internal/service/calculo"
	"react-golang/internal/storage"
)

type fixture struct {
	Nome         string                    `json:"nome"`
	Tipo         storage.TipoEstofado      `json:"tipo"`
	Dimensoes    storage.DimensoesEstofado `json:"dimensoes"`
	AreaEsperada float64                   `json:"areaEsperada"`
	Descricao    string                    `json:"descricao"`
}

// Fixtures de regressão da fórmula de área. Os valores esperados vêm da
// própria fórmula documentada, conferidos à mão.
var fixtures = []fixture{
	{
		Nome:         "Colchão Solteiro Padrão",
		Tipo:         storage.TipoColchaoSolteiro,
		Dimensoes:    storage.DimensoesEstofado{Largura: 90, Comprimento: 190, Profundidade: 25},
		AreaEsperada: 3.11, // (0.9×1.9) + 2×(1.9×0.25) + 2×(0.9×0.25) = 1.71 + 0.95 + 0.45
		Descricao:    "Colchão padrão: 90cm × 190cm × 25cm de altura",
	},
	{
		Nome:         "Sofá 2 Lugares",
		Tipo:         storage.TipoSofa2Lugares,
		Dimensoes:    storage.DimensoesEstofado{Largura: 150, Comprimento: 90, Profundidade: 80},
		AreaEsperada: 3.99, // (1.5×0.9) + (1.5×0.8) + 2×(0.9×0.8) = 1.35 + 1.2 + 1.44
		Descricao:    "Sofá: 150cm largura × 90cm profundidade assento × 80cm altura encosto",
	},
	{
		Nome:         "Colchão Casal",
		Tipo:         storage.TipoColchaoCasal,
		Dimensoes:    storage.DimensoesEstofado{Largura: 140, Comprimento: 190, Profundidade: 25},
		AreaEsperada: 4.31, // (1.4×1.9) + 2×(1.9×0.25) + 2×(1.4×0.25) = 2.66 + 0.95 + 0.7
		Descricao:    "Colchão casal: 140cm × 190cm × 25cm de altura",
	},
}

type ResultadoTeste struct {
	fixture
	AreaCalculada float64 `json:"areaCalculada"`
	Diferenca     float64 `json:"diferenca"`
	Passou        bool    `json:"passou"`
}

// ValidarCalculos roda as fixtures contra o motor de cálculo vivo.
// Tolerância de 0.01 m².
func ValidarCalculos(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calculos.ValidarCalculos"

		const tolerancia = 0.01

		resultados := make([]ResultadoTeste, 0, len(fixtures))
		for _, fx := range fixtures {
			area, err := calculo.CalcularArea(fx.Dimensoes, fx.Tipo)
			if err != nil {
				log.Error("fixture com dimensões inválidas", slog.String("op", op), slog.String("nome", fx.Nome))
				http.Error(w, "Internal error", http.StatusInternalServerError)
				return
			}

			diferenca := math.Abs(calculo.Round2(area) - fx.AreaEsperada)

			resultados = append(resultados, ResultadoTeste{
				fixture:       fx,
				AreaCalculada: calculo.Round2(area),
				Diferenca:     calculo.Round2(diferenca),
				Passou:        diferenca <= tolerancia,
			})
		}

		render.JSON(w, r, resultados)
	}
}
