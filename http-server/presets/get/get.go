package get

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"react-golang/internal/constants"
	"react-golang/internal/storage"
)

type Response struct {
	Presets []storage.PresetEstofado         `json:"presets"`
	Tipos   map[storage.TipoEstofado]string  `json:"tipos"`
	Niveis  map[storage.NivelSujidade]string `json:"niveis"`
}

// GetPresets devolve as dimensões padrão e os rótulos usados pela
// calculadora. Dados estáticos, direto das constantes.
func GetPresets(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, Response{
			Presets: constants.PresetsEstofados,
			Tipos:   constants.TiposEstofadoLabels,
			Niveis:  constants.NiveisSujidadeLabels,
		})
	}
}
