package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

type AdminCoefUpdater interface {
	UpdateFatorAgua(ctx context.Context, valor float64) error
}

type RequestFatorAgua struct {
	FatorAguaPorM2 float64 `json:"fatorAguaPorM2"`
}

func UpdateFatorAguaAdmin(log *slog.Logger, coef AdminCoefUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.UpdateFatorAguaAdmin"

		var req RequestFatorAgua
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "JSON inválido", http.StatusBadRequest)
			return
		}

		if req.FatorAguaPorM2 <= 0 {
			http.Error(w, "Fator de água deve ser maior que zero", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := coef.UpdateFatorAgua(ctx, req.FatorAguaPorM2); err != nil {
			log.Error("Falha ao atualizar fator de água", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
