package calculo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"react-golang/internal/storage"
)

func TestCalcularArea_Colchao(t *testing.T) {
	tests := []struct {
		name string
		tipo storage.TipoEstofado
		dim  storage.DimensoesEstofado
		want float64
	}{
		{
			name: "colchão solteiro 90x190x25",
			tipo: storage.TipoColchaoSolteiro,
			dim:  storage.DimensoesEstofado{Largura: 90, Comprimento: 190, Profundidade: 25},
			// (0.9×1.9) + 2×(1.9×0.25) + 2×(0.9×0.25) = 1.71 + 0.95 + 0.45
			want: 3.11,
		},
		{
			name: "colchão casal 140x190x25",
			tipo: storage.TipoColchaoCasal,
			dim:  storage.DimensoesEstofado{Largura: 140, Comprimento: 190, Profundidade: 25},
			// 2.66 + 0.95 + 0.7
			want: 4.31,
		},
		{
			name: "colchão queen 158x198x30",
			tipo: storage.TipoColchaoQueen,
			dim:  storage.DimensoesEstofado{Largura: 158, Comprimento: 198, Profundidade: 30},
			// (1.58×1.98) + 2×(1.98×0.3) + 2×(1.58×0.3) = 3.1284 + 1.188 + 0.948
			want: 5.26,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			area, err := CalcularArea(tt.dim, tt.tipo)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, Round2(area))
		})
	}
}

func TestCalcularArea_Assento(t *testing.T) {
	tests := []struct {
		name string
		tipo storage.TipoEstofado
		dim  storage.DimensoesEstofado
		want float64
	}{
		{
			name: "sofá 2 lugares 150x90x80",
			tipo: storage.TipoSofa2Lugares,
			dim:  storage.DimensoesEstofado{Largura: 150, Comprimento: 90, Profundidade: 80},
			// (1.5×0.9) + (1.5×0.8) + 2×(0.9×0.8) = 1.35 + 1.2 + 1.44
			want: 3.99,
		},
		{
			name: "poltrona 80x85x75",
			tipo: storage.TipoPoltrona,
			dim:  storage.DimensoesEstofado{Largura: 80, Comprimento: 85, Profundidade: 75},
			// (0.8×0.85) + (0.8×0.75) + 2×(0.85×0.75) = 0.68 + 0.6 + 1.275
			want: 2.56,
		},
		{
			name: "tipo fora da tabela usa fórmula de assento",
			tipo: storage.TipoEstofado("rede-de-descanso"),
			dim:  storage.DimensoesEstofado{Largura: 150, Comprimento: 90, Profundidade: 80},
			want: 3.99,
		},
		{
			name: "tipo outro usa fórmula de assento",
			tipo: storage.TipoOutro,
			dim:  storage.DimensoesEstofado{Largura: 100, Comprimento: 100, Profundidade: 100},
			// 1 + 1 + 2
			want: 4.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			area, err := CalcularArea(tt.dim, tt.tipo)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, Round2(area))
		})
	}
}

func TestCalcularArea_DimensoesInvalidas(t *testing.T) {
	tests := []struct {
		name string
		dim  storage.DimensoesEstofado
	}{
		{name: "largura zero", dim: storage.DimensoesEstofado{Largura: 0, Comprimento: 190, Profundidade: 25}},
		{name: "comprimento zero", dim: storage.DimensoesEstofado{Largura: 90, Comprimento: 0, Profundidade: 25}},
		{name: "profundidade zero", dim: storage.DimensoesEstofado{Largura: 90, Comprimento: 190, Profundidade: 0}},
		{name: "largura negativa", dim: storage.DimensoesEstofado{Largura: -90, Comprimento: 190, Profundidade: 25}},
		{name: "tudo zero", dim: storage.DimensoesEstofado{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalcularArea(tt.dim, storage.TipoColchaoSolteiro)

			assert.ErrorIs(t, err, ErrDimensoesInvalidas)
		})
	}
}

func TestCalcularArea_EscalaLinearPorDimensao(t *testing.T) {
	// Dobrar largura E comprimento mais que dobra a área (as laterais
	// também crescem), mas nunca diminui.
	base := storage.DimensoesEstofado{Largura: 90, Comprimento: 190, Profundidade: 25}
	dobro := storage.DimensoesEstofado{Largura: 180, Comprimento: 380, Profundidade: 25}

	areaBase, err := CalcularArea(base, storage.TipoColchaoSolteiro)
	assert.NoError(t, err)

	areaDobro, err := CalcularArea(dobro, storage.TipoColchaoSolteiro)
	assert.NoError(t, err)

	assert.Greater(t, areaDobro, 2*areaBase)
}

func TestTipoConhecido(t *testing.T) {
	assert.True(t, TipoConhecido(storage.TipoColchaoKing))
	assert.True(t, TipoConhecido(storage.TipoSofaL))
	assert.True(t, TipoConhecido(storage.TipoOutro))
	assert.False(t, TipoConhecido(storage.TipoEstofado("tapete")))
	assert.False(t, TipoConhecido(storage.TipoEstofado("")))
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 3.114, want: 3.11},
		{in: 3.116, want: 3.12},
		{in: 3.999, want: 4.0},
		{in: 0, want: 0},
		{in: -1.004, want: -1.0},
		{in: 100.0 / 3.0, want: 33.33},
	}

	for _, tt := range tests {
		got := Round2(tt.in)
		if got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
