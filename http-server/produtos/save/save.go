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

type ProdutoSaver interface {
	SaveProduto(ctx context.Context, produto *storage.Produto) error
}

type Response struct {
	Produto *storage.Produto `json:"produto,omitempty"`
	Status  string           `json:"status"`
	Error   string           `json:"error"`
}

// SaveProduto grava um produto novo. O custo por unidade é SEMPRE
// recalculado aqui — o valor que veio no request é descartado.
func SaveProduto(log *slog.Logger, saver ProdutoSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.produtos.SaveProduto"

		var produto storage.Produto
		if err := json.NewDecoder(r.Body).Decode(&produto); err != nil {
			log.Error("JSON inválido", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Dados inválidos", http.StatusBadRequest)
			return
		}

		if produto.Nome == "" || produto.QuantidadeEmbalagem <= 0 {
			http.Error(w, "Nome e quantidade da embalagem são obrigatórios", http.StatusBadRequest)
			return
		}

		agora := time.Now().UTC().Format(time.RFC3339)
		produto.ID = uuid.NewString()
		produto.CreatedAt = agora
		produto.UpdatedAt = agora
		produto.RecalcularCusto()

		if produto.Diluicoes == nil {
			produto.Diluicoes = []storage.Diluicao{}
		}
		if produto.TiposEstofadoCompativel == nil {
			produto.TiposEstofadoCompativel = []storage.TipoEstofado{}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := saver.SaveProduto(ctx, &produto); err != nil {
			log.Error("Falha ao salvar produto", slog.String("op", op), slog.String("error", err.Error()))
			render.JSON(w, r, Response{Error: "não foi possível salvar o produto"})
			return
		}

		render.JSON(w, r, Response{Produto: &produto, Status: "ok"})
	}
}
