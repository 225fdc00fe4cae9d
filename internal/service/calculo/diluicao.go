package calculo

import (
	"strconv"
	"strings"

	"react-golang/internal/storage"
)

// FatorDiluicao extrai o fator de uma proporção "A:B": partes de água por
// parte de produto. Com dois números usa o segundo; com um só número usa
// ele mesmo (forma antiga, aceita por compatibilidade). Proporção que não
// parseia devolve 0 e a linha é descartada pelo chamador.
func FatorDiluicao(proporcao string) float64 {
	partes := strings.Split(proporcao, ":")

	var nums []float64
	for _, p := range partes {
		n, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			continue
		}
		nums = append(nums, n)
	}

	switch len(nums) {
	case 0:
		return 0
	case 1:
		return nums[0]
	default:
		return nums[1]
	}
}

// CalcularDiluicaoProduto calcula a diluição de um produto.
//
// A ÁGUA é fixa pela área (ou pelo rendimentoPorM2 do produto, se houver);
// só o PRODUTO varia com a diluição. Ex.: 1:10 com 1000ml de água = 100ml
// de produto.
//
// Devolve nil quando o produto não tem diluição para o nível pedido —
// não é erro, o produto só não se aplica nesse nível.
func CalcularDiluicaoProduto(
	produto *storage.Produto,
	quantidadeAguaPadraoLitros float64,
	nivel storage.NivelSujidade,
	area float64,
) *storage.ResultadoProduto {
	diluicao := produto.DiluicaoPara(nivel)
	if diluicao == nil {
		return nil
	}

	fator := FatorDiluicao(diluicao.Proporcao)
	if fator <= 0 {
		return nil
	}

	var quantidadeAguaMl float64
	if produto.RendimentoPorM2 > 0 {
		quantidadeAguaMl = area * produto.RendimentoPorM2
	} else {
		quantidadeAguaMl = quantidadeAguaPadraoLitros * 1000
	}

	quantidadeProduto := quantidadeAguaMl / fator

	return &storage.ResultadoProduto{
		ProdutoID:         produto.ID,
		ProdutoNome:       produto.Nome,
		QuantidadeProduto: Round2(quantidadeProduto),
		QuantidadeAgua:    Round2(quantidadeAguaMl),
		Proporcao:         diluicao.Proporcao,
	}
}
