package remove

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type ServicoRemover interface {
	DeleteServico(ctx context.Context, clienteID, servicoID string) error
}

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func DeleteServico(log *slog.Logger, remover ServicoRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.servicos.DeleteServico"

		clienteID := chi.URLParam(r, "clienteId")
		servicoID := chi.URLParam(r, "servicoId")
		if clienteID == "" || servicoID == "" {
			http.Error(w, "Missing required parameters", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := remover.DeleteServico(ctx, clienteID, servicoID); err != nil {
			log.Error("Falha ao apagar serviço", slog.String("op", op), slog.String("id", servicoID), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Status: "ok"})
	}
}
