package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"react-golang/internal/storage"
)

type ClienteUpdater interface {
	UpdateCliente(ctx context.Context, cliente *storage.Cliente) error
}

type Response struct {
	Cliente *storage.Cliente `json:"cliente,omitempty"`
	Status  string           `json:"status"`
	Error   string           `json:"error"`
}

func UpdateCliente(log *slog.Logger, updater ClienteUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.clientes.UpdateCliente"

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "Missing required parameter 'id'", http.StatusBadRequest)
			return
		}

		var cliente storage.Cliente
		if err := json.NewDecoder(r.Body).Decode(&cliente); err != nil {
			log.Error("JSON inválido", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Dados inválidos", http.StatusBadRequest)
			return
		}

		cliente.ID = id
		cliente.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.UpdateCliente(ctx, &cliente); err != nil {
			log.Error("Falha ao atualizar cliente", slog.String("op", op), slog.String("id", id), slog.String("error", err.Error()))
			render.JSON(w, r, Response{Error: "não foi possível atualizar o cliente"})
			return
		}

		render.JSON(w, r, Response{Cliente: &cliente, Status: "ok"})
	}
}
