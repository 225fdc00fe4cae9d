package remove

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/go-chi/render"
)

type HistoricoRemover interface {
	DeleteResultado(ctx context.Context, id string) error
}

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// DeleteResultado apaga um cálculo do histórico. Resultados são
// imutáveis: apagar é a única alteração permitida.
func DeleteResultado(log *slog.Logger, historico HistoricoRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calculos.DeleteResultado"

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "Missing required parameter 'id'", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := historico.DeleteResultado(ctx, id); err != nil {
			log.With(slog.String("op", op), slog.String("id", id), slog.String("error", err.Error())).Error("Falha ao apagar cálculo")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Status: "ok"})
	}
}
