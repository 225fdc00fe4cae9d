package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"react-golang/internal/storage"
)

type ServicoSaver interface {
	SaveServico(ctx context.Context, servico *storage.Servico) error
}

type Recalculador interface {
	RecalcularDerivados(ctx context.Context, servico *storage.Servico) error
}

type Response struct {
	Servico *storage.Servico `json:"servico,omitempty"`
	Status  string           `json:"status"`
	Error   string           `json:"error"`
}

// SaveServico grava um serviço novo do cliente. Custo de produtos e
// lucro são recalculados no save — o que veio no request é ignorado.
func SaveServico(log *slog.Logger, saver ServicoSaver, recalc Recalculador) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.servicos.SaveServico"

		clienteID := chi.URLParam(r, "clienteId")
		if clienteID == "" {
			http.Error(w, "Missing required parameter 'clienteId'", http.StatusBadRequest)
			return
		}

		var servico storage.Servico
		if err := json.NewDecoder(r.Body).Decode(&servico); err != nil {
			log.Error("JSON inválido", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Dados inválidos", http.StatusBadRequest)
			return
		}

		servico.ID = uuid.NewString()
		servico.ClienteID = clienteID
		servico.CreatedAt = time.Now().UTC().Format(time.RFC3339)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := recalc.RecalcularDerivados(ctx, &servico); err != nil {
			log.Error("Falha ao recalcular custos do serviço", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		if err := saver.SaveServico(ctx, &servico); err != nil {
			log.Error("Falha ao salvar serviço", slog.String("op", op), slog.String("error", err.Error()))
			render.JSON(w, r, Response{Error: "não foi possível salvar o serviço"})
			return
		}

		render.JSON(w, r, Response{Servico: &servico, Status: "ok"})
	}
}

type ComboRequest struct {
	DataServico *string           `json:"dataServico,omitempty"`
	Observacoes *string           `json:"observacoes,omitempty"`
	Servicos    []storage.Servico `json:"servicos"`
}

type ComboResponse struct {
	Servicos []storage.Servico `json:"servicos"`
	Status   string            `json:"status"`
	Error    string            `json:"error"`
}

// SaveComboServicos grava vários serviços de uma vez, todos com a mesma
// data. São N inserts sequenciais — transacionalidade fica com o
// storage, não com o cálculo.
func SaveComboServicos(log *slog.Logger, saver ServicoSaver, recalc Recalculador) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.servicos.SaveComboServicos"

		clienteID := chi.URLParam(r, "clienteId")
		if clienteID == "" {
			http.Error(w, "Missing required parameter 'clienteId'", http.StatusBadRequest)
			return
		}

		var req ComboRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("JSON inválido", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Dados inválidos", http.StatusBadRequest)
			return
		}

		if len(req.Servicos) == 0 {
			http.Error(w, "Combo precisa de pelo menos um serviço", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		salvos := make([]storage.Servico, 0, len(req.Servicos))
		for i := range req.Servicos {
			servico := req.Servicos[i]
			servico.ID = uuid.NewString()
			servico.ClienteID = clienteID
			servico.CreatedAt = time.Now().UTC().Format(time.RFC3339)
			if req.DataServico != nil {
				servico.DataServico = req.DataServico
			}
			if servico.Observacoes == nil && req.Observacoes != nil {
				servico.Observacoes = req.Observacoes
			}

			if err := recalc.RecalcularDerivados(ctx, &servico); err != nil {
				log.Error("Falha ao recalcular custos do combo", slog.String("op", op), slog.String("error", err.Error()))
				http.Error(w, "Internal error", http.StatusInternalServerError)
				return
			}

			if err := saver.SaveServico(ctx, &servico); err != nil {
				log.Error("Falha ao salvar serviço do combo", slog.String("op", op), slog.String("error", err.Error()))
				render.JSON(w, r, ComboResponse{Servicos: salvos, Error: "não foi possível salvar todos os serviços"})
				return
			}

			salvos = append(salvos, servico)
		}

		render.JSON(w, r, ComboResponse{Servicos: salvos, Status: "ok"})
	}
}
