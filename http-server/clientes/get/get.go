package get

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"react-golang/internal/storage"
)

type ClientesProvider interface {
	GetAllClientes(ctx context.Context) ([]*storage.Cliente, error)
	GetCliente(ctx context.Context, id string) (*storage.Cliente, error)
}

type ResponseClientes struct {
	Clientes []*storage.Cliente `json:"clientes"`
	Error    string             `json:"error"`
}

func GetClientes(log *slog.Logger, clientes ClientesProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.clientes.GetClientes"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		lista, err := clientes.GetAllClientes(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Falha ao buscar clientes")
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseClientes{Error: "não foi possível carregar os clientes"})
			return
		}

		if lista == nil {
			lista = []*storage.Cliente{}
		}

		render.JSON(w, r, ResponseClientes{Clientes: lista})
	}
}

func GetCliente(log *slog.Logger, clientes ClientesProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.clientes.GetCliente"

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "Missing required parameter 'id'", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		cliente, err := clientes.GetCliente(ctx, id)
		if err != nil {
			if strings.Contains(err.Error(), "não encontrado") {
				log.With(slog.String("op", op), slog.String("id", id)).Warn("Cliente não encontrado")
				http.Error(w, "Cliente não encontrado", http.StatusNotFound)
				return
			}

			log.With(slog.String("op", op), slog.String("id", id), slog.String("error", err.Error())).Error("Falha ao buscar cliente")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, cliente)
	}
}
