package calculo

import (
	"errors"
	"math"

	"react-golang/internal/constants"
	"react-golang/internal/storage"
)

// ErrDimensoesInvalidas é a única falha dura do motor de cálculo:
// dimensão zero ou negativa rejeita o cálculo inteiro.
var ErrDimensoesInvalidas = errors.New("dimensões do estofado devem ser maiores que zero")

// CalcularArea estima a área total do estofado em m².
//
// Fórmulas validadas:
//   - Colchões: área = topo + 2 laterais (comprimento) + 2 laterais (largura)
//     = (largura × comprimento) + 2 × (comprimento × altura) + 2 × (largura × altura)
//   - Sofás/poltronas: área = assento + encosto + 2 laterais
//     = (largura × profundidade) + (largura × encosto) + 2 × (profundidade × encosto)
//
// Nenhum arredondamento aqui; o resultado final arredonda para 2 casas.
// Tipo desconhecido cai na fórmula de assento (o chamador loga o caso).
func CalcularArea(dim storage.DimensoesEstofado, tipo storage.TipoEstofado) (float64, error) {
	if dim.Largura <= 0 || dim.Comprimento <= 0 || dim.Profundidade <= 0 {
		return 0, ErrDimensoesInvalidas
	}

	// cm -> m
	l := dim.Largura / 100
	c := dim.Comprimento / 100
	h := dim.Profundidade / 100

	if constants.GeometriaPorTipo[tipo] == constants.GeometriaColchao {
		areaTopo := l * c
		areaLateraisComprimento := 2 * (c * h)
		areaLateraisLargura := 2 * (l * h)
		return areaTopo + areaLateraisComprimento + areaLateraisLargura, nil
	}

	areaAssento := l * c
	areaEncosto := l * h
	areaLaterais := 2 * (c * h)
	return areaAssento + areaEncosto + areaLaterais, nil
}

// TipoConhecido informa se o tipo está na tabela de geometria. Tipos fora
// dela ainda calculam (fallback de assento), mas o orquestrador loga.
func TipoConhecido(tipo storage.TipoEstofado) bool {
	_, ok := constants.GeometriaPorTipo[tipo]
	return ok
}

// Round2 arredonda para 2 casas decimais, igual ao front original
// (Math.round(x*100)/100).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
