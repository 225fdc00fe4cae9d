package get

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"react-golang/internal/service/custo"
	"react-golang/internal/storage"
)

type CustosProvider interface {
	GetAllClientes(ctx context.Context) ([]*storage.Cliente, error)
	GetCliente(ctx context.Context, id string) (*storage.Cliente, error)
}

type ResponseCustos struct {
	Estatisticas custo.Estatisticas   `json:"estatisticas"`
	PorMes       []custo.ResumoMensal `json:"porMes"`
	Error        string               `json:"error,omitempty"`
}

// GetEstatisticas devolve o painel de custos: totais gerais (opcionalmente
// filtrados por data exata via ?data=AAAA-MM-DD) e o agrupamento mensal.
func GetEstatisticas(log *slog.Logger, provider CustosProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.custos.GetEstatisticas"

		filtroData := r.URL.Query().Get("data")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		clientes, err := provider.GetAllClientes(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Falha ao buscar clientes para o painel de custos")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, ResponseCustos{
			Estatisticas: custo.CalcularEstatisticas(clientes, filtroData),
			PorMes:       custo.AgruparPorMes(clientes),
		})
	}
}

// GetEstatisticasCliente devolve o rollup de um cliente só.
func GetEstatisticasCliente(log *slog.Logger, provider CustosProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.custos.GetEstatisticasCliente"

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "Missing required parameter 'id'", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		cliente, err := provider.GetCliente(ctx, id)
		if err != nil {
			if strings.Contains(err.Error(), "não encontrado") {
				http.Error(w, "Cliente não encontrado", http.StatusNotFound)
				return
			}

			log.With(slog.String("op", op), slog.String("id", id), slog.String("error", err.Error())).Error("Falha ao buscar cliente")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, custo.EstatisticasCliente(cliente))
	}
}
