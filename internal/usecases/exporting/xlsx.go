package exporting

import (
	"bytes"
	"fmt"
	"time"

	"github.com/Rerimoura/venn-biz/internal/domain"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// Nomes de aba e prefixos de arquivo por partição, como no painel original.
var sheetNames = map[string]string{
	domain.PartitionOnlyA: "Apenas Produto A",
	domain.PartitionOnlyB: "Apenas Produto B",
	domain.PartitionBoth:  "Ambos Produtos",
}

var filePrefixes = map[string]string{
	domain.PartitionOnlyA: "clientes_apenas_A",
	domain.PartitionOnlyB: "clientes_apenas_B",
	domain.PartitionBoth:  "clientes_ambos",
}

// ErrUnknownPartition indica um identificador de partição fora de
// only-a/only-b/both.
var ErrUnknownPartition = errors.New("partição de exportação desconhecida")

// TableExporter gera a planilha de uma tabela de detalhamento.
type TableExporter interface {
	DetailTableWorkbook(rows []domain.CustomerDetailRow, partition string, generatedAt time.Time) (*bytes.Buffer, string, error)
}

type Service struct{}

func NewService() TableExporter {
	return &Service{}
}

// DetailTableWorkbook monta um arquivo xlsx com uma única aba contendo a
// tabela da partição e devolve o conteúdo com o nome de arquivo sugerido.
// As partições de produto único têm a coluna "Produto" após o vendedor; a
// partição "ambos" tem a coluna "Produtos" ao final.
func (s *Service) DetailTableWorkbook(rows []domain.CustomerDetailRow, partition string, generatedAt time.Time) (*bytes.Buffer, string, error) {
	sheetName, ok := sheetNames[partition]
	if !ok {
		return nil, "", ErrUnknownPartition
	}

	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, "", errors.Wrap(err, "erro ao nomear a aba da planilha")
	}

	if err := writeRow(file, sheetName, 1, headerCells(partition)); err != nil {
		return nil, "", err
	}

	for i, row := range rows {
		if err := writeRow(file, sheetName, i+2, dataCells(partition, row)); err != nil {
			return nil, "", err
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, "", errors.Wrap(err, "erro ao serializar a planilha")
	}

	fileName := fmt.Sprintf("%s_%s.xlsx", filePrefixes[partition], generatedAt.Format("20060102"))
	return buffer, fileName, nil
}

func headerCells(partition string) []interface{} {
	headers := []interface{}{"Cliente", "Razão Social", "Cidade", "Atividade", "Rede", "Último Vendedor"}
	if partition != domain.PartitionBoth {
		headers = append(headers, "Produto")
	}
	headers = append(headers, "Última Compra", "Qtd Total")
	if partition == domain.PartitionBoth {
		headers = append(headers, "Produtos")
	}
	return headers
}

func dataCells(partition string, row domain.CustomerDetailRow) []interface{} {
	cells := []interface{}{
		row.CustomerID,
		row.LegalName,
		row.City,
		row.Activity,
		row.Network,
		row.LastSalesperson,
	}
	if partition != domain.PartitionBoth {
		cells = append(cells, row.ProductDescription)
	}
	cells = append(cells, row.LastPurchase.Format(time.DateOnly), row.TotalQuantity)
	if partition == domain.PartitionBoth {
		cells = append(cells, row.ProductDescription)
	}
	return cells
}

func writeRow(file *excelize.File, sheetName string, rowNumber int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNumber)
	if err != nil {
		return errors.Wrap(err, "erro ao montar coordenada da planilha")
	}

	if err := file.SetSheetRow(sheetName, cell, &cells); err != nil {
		return errors.Wrapf(err, "erro ao escrever a linha %d da planilha", rowNumber)
	}

	return nil
}
