package relatorio

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"react-golang/internal/constants"
	"react-golang/internal/service/custo"
	"react-golang/internal/storage"
)

type RelatorioStorage interface {
	GetAllClientes(ctx context.Context) ([]*storage.Cliente, error)
}

type RelatorioService struct {
	storage RelatorioStorage
}

func NewRelatorioService(storage RelatorioStorage) *RelatorioService {
	return &RelatorioService{storage: storage}
}

// GerarExcelCustos monta a planilha de custos/lucro por serviço, com
// totais no rodapé. Os valores vêm dos campos derivados já gravados —
// o relatório não recalcula nada.
func (g *RelatorioService) GerarExcelCustos(ctx context.Context) ([]byte, error) {
	const op = "service.relatorio.GerarExcelCustos"

	clientes, err := g.storage.GetAllClientes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Custos e Lucro"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	moneyStyle, _ := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00

	headers := []string{"Cliente", "Serviço", "Tipo", "Data", "Custo Produtos", "Mão de Obra", "Preço Venda", "Lucro"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	row := 2
	for _, cliente := range clientes {
		for i := range cliente.Servicos {
			servico := &cliente.Servicos[i]

			tipoLabel := constants.TiposServicoLabels[servico.Tipo]
			if tipoLabel == "" {
				tipoLabel = servico.Tipo
			}

			var dataServico string
			if servico.DataServico != nil {
				dataServico = *servico.DataServico
			}

			var maoDeObra, precoVenda, lucro float64
			if servico.CustoMaoDeObra != nil {
				maoDeObra = *servico.CustoMaoDeObra
			}
			if servico.PrecoVenda != nil {
				precoVenda = *servico.PrecoVenda
			}
			if servico.Lucro != nil {
				lucro = *servico.Lucro
			}

			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), cliente.Nome)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), servico.Descricao)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), tipoLabel)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), dataServico)
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), servico.CustoProdutos)
			f.SetCellValue(sheet, fmt.Sprintf("F%d", row), maoDeObra)
			f.SetCellValue(sheet, fmt.Sprintf("G%d", row), precoVenda)
			f.SetCellValue(sheet, fmt.Sprintf("H%d", row), lucro)
			f.SetCellStyle(sheet, fmt.Sprintf("E%d", row), fmt.Sprintf("H%d", row), moneyStyle)

			row++
		}
	}

	est := custo.CalcularEstatisticas(clientes, "")

	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "TOTAL")
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), headerStyle)
	f.SetCellValue(sheet, fmt.Sprintf("E%d", row), est.CustoTotal)
	f.SetCellValue(sheet, fmt.Sprintf("G%d", row), est.ReceitaTotal)
	f.SetCellValue(sheet, fmt.Sprintf("H%d", row), est.LucroTotal)
	f.SetCellStyle(sheet, fmt.Sprintf("E%d", row), fmt.Sprintf("H%d", row), moneyStyle)

	f.SetColWidth(sheet, "A", "B", 28)
	f.SetColWidth(sheet, "C", "D", 18)
	f.SetColWidth(sheet, "E", "H", 15)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("%s: gravando planilha: %w", op, err)
	}

	return buf.Bytes(), nil
}
