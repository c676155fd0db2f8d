package crossselling

import (
	"testing"
	"time"

	"github.com/Rerimoura/venn-biz/internal/domain"
	"github.com/stretchr/testify/assert"
)

func detailRecord(customerID, productID string, day int, quantity float64, salesperson, description *string) domain.SaleRecord {
	return domain.SaleRecord{
		CustomerID:         customerID,
		ProductID:          productID,
		EmissionDate:       time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC),
		Quantity:           quantity,
		Salesperson:        salesperson,
		LegalName:          strPtr("Razão " + customerID),
		City:               strPtr("Belo Horizonte"),
		ProductDescription: description,
	}
}

func TestBuildDetailTable(t *testing.T) {
	t.Run("Agrega uma linha por cliente somando quantidades", func(t *testing.T) {
		records := []domain.SaleRecord{
			detailRecord("C1", "PA", 10, 2, strPtr("CARLOS"), strPtr("LENTE CR-39")),
			detailRecord("C1", "PA", 5, 3, strPtr("MARIA"), strPtr("LENTE CR-39")),
			detailRecord("C2", "PA", 8, 1, strPtr("JOSE"), strPtr("LENTE CR-39")),
			detailRecord("C1", "PB", 20, 9, strPtr("CARLOS"), strPtr("ARMACAO")),
		}
		customerIDs := map[string]bool{"C1": true, "C2": true}

		rows := BuildDetailTable(records, customerIDs, "PA")

		assert.Len(t, rows, 2)

		// Ordenado por última compra decrescente: C1 (dia 10) antes de C2 (dia 8)
		assert.Equal(t, "C1", rows[0].CustomerID)
		assert.Equal(t, 5.0, rows[0].TotalQuantity)
		assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), rows[0].LastPurchase)
		assert.Equal(t, "Razão C1", rows[0].LegalName)
		assert.Equal(t, "LENTE CR-39", rows[0].ProductDescription)

		assert.Equal(t, "C2", rows[1].CustomerID)
		assert.Equal(t, 1.0, rows[1].TotalQuantity)
	})

	t.Run("Último vendedor é o da venda de maior data de emissão", func(t *testing.T) {
		records := []domain.SaleRecord{
			detailRecord("C1", "PA", 15, 1, strPtr("MARIA"), nil),
			detailRecord("C1", "PA", 3, 1, strPtr("CARLOS"), nil),
			detailRecord("C1", "PA", 9, 1, strPtr("JOSE"), nil),
		}

		rows := BuildDetailTable(records, map[string]bool{"C1": true}, "PA")

		assert.Len(t, rows, 1)
		assert.Equal(t, "MARIA", rows[0].LastSalesperson)
	})

	t.Run("Venda sem vendedor não apaga o vendedor conhecido", func(t *testing.T) {
		records := []domain.SaleRecord{
			detailRecord("C1", "PA", 20, 1, nil, nil),
			detailRecord("C1", "PA", 5, 1, strPtr("CARLOS"), nil),
		}

		rows := BuildDetailTable(records, map[string]bool{"C1": true}, "PA")

		assert.Len(t, rows, 1)
		assert.Equal(t, "CARLOS", rows[0].LastSalesperson)
	})

	t.Run("Empate de data fica com o registro mais tardio da varredura", func(t *testing.T) {
		records := []domain.SaleRecord{
			detailRecord("C1", "PA", 10, 1, strPtr("CARLOS"), nil),
			detailRecord("C1", "PA", 10, 1, strPtr("MARIA"), nil),
		}

		rows := BuildDetailTable(records, map[string]bool{"C1": true}, "PA")

		assert.Len(t, rows, 1)
		assert.Equal(t, "MARIA", rows[0].LastSalesperson)
	})

	t.Run("Só entram vendas do produto da partição", func(t *testing.T) {
		records := []domain.SaleRecord{
			detailRecord("C1", "PA", 10, 2, strPtr("CARLOS"), nil),
			detailRecord("C1", "PB", 12, 7, strPtr("CARLOS"), nil),
		}

		rows := BuildDetailTable(records, map[string]bool{"C1": true}, "PA")

		assert.Len(t, rows, 1)
		assert.Equal(t, 2.0, rows[0].TotalQuantity)
		assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), rows[0].LastPurchase)
	})

	t.Run("Partição vazia produz tabela vazia", func(t *testing.T) {
		records := []domain.SaleRecord{
			detailRecord("C1", "PA", 10, 1, nil, nil),
		}

		rows := BuildDetailTable(records, map[string]bool{}, "PA")

		assert.Empty(t, rows)
	})
}

func TestBuildBothDetailTable(t *testing.T) {
	t.Run("Agregados consideram todas as vendas do cliente", func(t *testing.T) {
		records := []domain.SaleRecord{
			detailRecord("C1", "PA", 10, 2, strPtr("CARLOS"), strPtr("LENTE CR-39")),
			detailRecord("C1", "PB", 15, 3, strPtr("MARIA"), strPtr("ARMACAO METAL")),
			detailRecord("C2", "PA", 8, 1, strPtr("JOSE"), strPtr("LENTE CR-39")),
		}

		rows := BuildBothDetailTable(records, map[string]bool{"C1": true}, "PA", "PB")

		assert.Len(t, rows, 1)
		assert.Equal(t, "C1", rows[0].CustomerID)
		assert.Equal(t, 5.0, rows[0].TotalQuantity)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), rows[0].LastPurchase)
		assert.Equal(t, "MARIA", rows[0].LastSalesperson)
		assert.Equal(t, "LENTE CR-39 | ARMACAO METAL", rows[0].ProductDescription)
	})

	t.Run("Lado sem descrição entra como vazio", func(t *testing.T) {
		records := []domain.SaleRecord{
			detailRecord("C1", "PA", 10, 1, nil, nil),
			detailRecord("C1", "PB", 12, 1, nil, strPtr("ARMACAO METAL")),
		}

		rows := BuildBothDetailTable(records, map[string]bool{"C1": true}, "PA", "PB")

		assert.Len(t, rows, 1)
		assert.Equal(t, " | ARMACAO METAL", rows[0].ProductDescription)
	})

	t.Run("Ordena por última compra decrescente", func(t *testing.T) {
		records := []domain.SaleRecord{
			detailRecord("C1", "PA", 5, 1, nil, nil),
			detailRecord("C1", "PB", 6, 1, nil, nil),
			detailRecord("C2", "PA", 20, 1, nil, nil),
			detailRecord("C2", "PB", 21, 1, nil, nil),
		}
		customerIDs := map[string]bool{"C1": true, "C2": true}

		rows := BuildBothDetailTable(records, customerIDs, "PA", "PB")

		assert.Len(t, rows, 2)
		assert.Equal(t, "C2", rows[0].CustomerID)
		assert.Equal(t, "C1", rows[1].CustomerID)
	})

	t.Run("Partição vazia produz tabela vazia", func(t *testing.T) {
		rows := BuildBothDetailTable([]domain.SaleRecord{}, map[string]bool{}, "PA", "PB")
		assert.Empty(t, rows)
	})
}
