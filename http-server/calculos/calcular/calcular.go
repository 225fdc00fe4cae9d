package calcular

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"react-golang/internal/service/calculo"
	"react-golang/internal/storage"
)

type Calculadora interface {
	CalcularResultado(ctx context.Context, input storage.CalculoInput) (*storage.ResultadoCalculo, error)
	SalvarResultado(ctx context.Context, resultado *storage.ResultadoCalculo) error
}

type Request struct {
	storage.CalculoInput
	ClienteNome *string `json:"clienteNome,omitempty"`
}

// CalcularResultado executa o cálculo de diluição e grava no histórico.
func CalcularResultado(log *slog.Logger, calc Calculadora) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calculos.CalcularResultado"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("JSON inválido", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Dados inválidos", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		resultado, err := calc.CalcularResultado(ctx, req.CalculoInput)
		if err != nil {
			if errors.Is(err, calculo.ErrDimensoesInvalidas) {
				http.Error(w, "Dimensões devem ser maiores que zero", http.StatusBadRequest)
				return
			}

			log.Error("Falha ao calcular resultado", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		resultado.ClienteNome = req.ClienteNome

		if err := calc.SalvarResultado(ctx, resultado); err != nil {
			log.Error("Falha ao salvar no histórico", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, resultado)
	}
}
