package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"react-golang/internal/storage"
)

type ProdutosProvider interface {
	GetAllProdutos(ctx context.Context) ([]*storage.Produto, error)
}

type ResponseProdutos struct {
	Produtos []*storage.Produto `json:"produtos"`
	Error    string             `json:"error"`
}

func GetProdutos(log *slog.Logger, produtos ProdutosProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.produtos.GetProdutos"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		lista, err := produtos.GetAllProdutos(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Falha ao buscar produtos")
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseProdutos{Error: "não foi possível carregar os produtos"})
			return
		}

		if lista == nil {
			lista = []*storage.Produto{}
		}

		render.JSON(w, r, ResponseProdutos{Produtos: lista})
	}
}
