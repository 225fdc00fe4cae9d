package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

type AdminCoefProvider interface {
	GetFatorAgua(ctx context.Context) (float64, error)
}

type ResponseFatorAgua struct {
	FatorAguaPorM2 float64 `json:"fatorAguaPorM2"`
}

// GetFatorAguaAdmin devolve o coeficiente de litros de água por m².
// Zero significa que o admin ainda não configurou; o cálculo usa o
// padrão da config nesse caso.
func GetFatorAguaAdmin(log *slog.Logger, coef AdminCoefProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.GetFatorAguaAdmin"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		fator, err := coef.GetFatorAgua(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Falha ao buscar fator de água")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, ResponseFatorAgua{FatorAguaPorM2: fator})
	}
}
