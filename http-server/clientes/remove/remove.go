package remove

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type ClienteRemover interface {
	DeleteCliente(ctx context.Context, id string) error
}

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// DeleteCliente apaga o cliente e os serviços dele.
func DeleteCliente(log *slog.Logger, remover ClienteRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.clientes.DeleteCliente"

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "Missing required parameter 'id'", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := remover.DeleteCliente(ctx, id); err != nil {
			log.Error("Falha ao apagar cliente", slog.String("op", op), slog.String("id", id), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Status: "ok"})
	}
}
