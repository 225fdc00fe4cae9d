package remove

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type ProdutoRemover interface {
	DeleteProduto(ctx context.Context, id string) error
}

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// DeleteProduto apaga o produto do catálogo. Cálculos históricos que o
// referenciam continuam válidos: o custo da linha passa a contribuir
// zero.
func DeleteProduto(log *slog.Logger, remover ProdutoRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.produtos.DeleteProduto"

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "Missing required parameter 'id'", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := remover.DeleteProduto(ctx, id); err != nil {
			log.Error("Falha ao apagar produto", slog.String("op", op), slog.String("id", id), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Status: "ok"})
	}
}
