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

type ServicoUpdater interface {
	UpdateServico(ctx context.Context, servico *storage.Servico) error
}

type Recalculador interface {
	RecalcularDerivados(ctx context.Context, servico *storage.Servico) error
}

type Response struct {
	Servico *storage.Servico `json:"servico,omitempty"`
	Status  string           `json:"status"`
	Error   string           `json:"error"`
}

// UpdateServico atualiza um serviço, recalculando custo de produtos e
// lucro antes de gravar — derivados nunca ficam velhos no banco.
func UpdateServico(log *slog.Logger, updater ServicoUpdater, recalc Recalculador) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.servicos.UpdateServico"

		clienteID := chi.URLParam(r, "clienteId")
		servicoID := chi.URLParam(r, "servicoId")
		if clienteID == "" || servicoID == "" {
			http.Error(w, "Missing required parameters", http.StatusBadRequest)
			return
		}

		var servico storage.Servico
		if err := json.NewDecoder(r.Body).Decode(&servico); err != nil {
			log.Error("JSON inválido", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Dados inválidos", http.StatusBadRequest)
			return
		}

		servico.ID = servicoID
		servico.ClienteID = clienteID

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := recalc.RecalcularDerivados(ctx, &servico); err != nil {
			log.Error("Falha ao recalcular custos do serviço", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		if err := updater.UpdateServico(ctx, &servico); err != nil {
			log.Error("Falha ao atualizar serviço", slog.String("op", op), slog.String("id", servicoID), slog.String("error", err.Error()))
			render.JSON(w, r, Response{Error: "não foi possível atualizar o serviço"})
			return
		}

		render.JSON(w, r, Response{Servico: &servico, Status: "ok"})
	}
}
