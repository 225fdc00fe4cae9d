package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"react-golang/internal/storage"
)

type HistoricoProvider interface {
	GetAllResultados(ctx context.Context) ([]*storage.ResultadoCalculo, error)
	GetResultado(ctx context.Context, id string) (*storage.ResultadoCalculo, error)
}

type ResponseHistorico struct {
	Resultados []*storage.ResultadoCalculo `json:"resultados"`
	Error      string                      `json:"error"`
}

func GetHistorico(log *slog.Logger, historico HistoricoProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calculos.GetHistorico"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		resultados, err := historico.GetAllResultados(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Falha ao buscar histórico")
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseHistorico{Error: "não foi possível carregar o histórico"})
			return
		}

		if resultados == nil {
			resultados = []*storage.ResultadoCalculo{}
		}

		render.JSON(w, r, ResponseHistorico{Resultados: resultados})
	}
}

func GetResultado(log *slog.Logger, historico HistoricoProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calculos.GetResultado"

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "Missing required parameter 'id'", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		resultado, err := historico.GetResultado(ctx, id)
		if err != nil {
			log.With(slog.String("op", op), slog.String("id", id), slog.String("error", err.Error())).Error("Falha ao buscar cálculo")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		if resultado == nil {
			log.With(slog.String("op", op), slog.String("id", id)).Warn("Cálculo não encontrado")
			http.Error(w, "Cálculo não encontrado", http.StatusNotFound)
			return
		}

		render.JSON(w, r, resultado)
	}
}
