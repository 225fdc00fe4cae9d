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

type ProdutoUpdater interface {
	UpdateProduto(ctx context.Context, produto *storage.Produto) error
}

type Response struct {
	Produto *storage.Produto `json:"produto,omitempty"`
	Status  string           `json:"status"`
	Error   string           `json:"error"`
}

// UpdateProduto atualiza um produto existente, recalculando o custo por
// unidade antes de gravar.
func UpdateProduto(log *slog.Logger, updater ProdutoUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.produtos.UpdateProduto"

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "Missing required parameter 'id'", http.StatusBadRequest)
			return
		}

		var produto storage.Produto
		if err := json.NewDecoder(r.Body).Decode(&produto); err != nil {
			log.Error("JSON inválido", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Dados inválidos", http.StatusBadRequest)
			return
		}

		produto.ID = id
		produto.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		produto.RecalcularCusto()

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.UpdateProduto(ctx, &produto); err != nil {
			log.Error("Falha ao atualizar produto", slog.String("op", op), slog.String("id", id), slog.String("error", err.Error()))
			render.JSON(w, r, Response{Error: "não foi possível atualizar o produto"})
			return
		}

		render.JSON(w, r, Response{Produto: &produto, Status: "ok"})
	}
}
