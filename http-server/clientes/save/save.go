package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"react-golang/internal/storage"
)

type ClienteSaver interface {
	SaveCliente(ctx context.Context, cliente *storage.Cliente) error
}

type Response struct {
	Cliente *storage.Cliente `json:"cliente,omitempty"`
	Status  string           `json:"status"`
	Error   string           `json:"error"`
}

func SaveCliente(log *slog.Logger, saver ClienteSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.clientes.SaveCliente"

		var cliente storage.Cliente
		if err := json.NewDecoder(r.Body).Decode(&cliente); err != nil {
			log.Error("JSON inválido", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Dados inválidos", http.StatusBadRequest)
			return
		}

		if cliente.Nome == "" {
			http.Error(w, "Nome do cliente é obrigatório", http.StatusBadRequest)
			return
		}

		agora := time.Now().UTC().Format(time.RFC3339)
		cliente.ID = uuid.NewString()
		cliente.CreatedAt = agora
		cliente.UpdatedAt = agora
		cliente.Servicos = []storage.Servico{}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := saver.SaveCliente(ctx, &cliente); err != nil {
			log.Error("Falha ao salvar cliente", slog.String("op", op), slog.String("error", err.Error()))
			render.JSON(w, r, Response{Error: "não foi possível salvar o cliente"})
			return
		}

		render.JSON(w, r, Response{Cliente: &cliente, Status: "ok"})
	}
}
