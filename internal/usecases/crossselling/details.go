package crossselling

import (
	"sort"

	"github.com/Rerimoura/venn-biz/internal/domain"
)

// descriptionSeparator une as descrições dos dois produtos na tabela da
// partição "ambos".
const descriptionSeparator = " | "

// BuildDetailTable monta a tabela de detalhamento de uma partição de produto
// único: uma linha por cliente, agregando apenas as vendas do produto
// informado. Partição vazia produz tabela vazia.
func BuildDetailTable(records []domain.SaleRecord, customerIDs map[string]bool, productID string) []domain.CustomerDetailRow {
	if len(customerIDs) == 0 {
		return []domain.CustomerDetailRow{}
	}

	subset := make([]domain.SaleRecord, 0, len(records))
	for _, rec := range records {
		if rec.ProductID == productID && customerIDs[rec.CustomerID] {
			subset = append(subset, rec)
		}
	}

	rows := aggregateByCustomer(subset, nil, true)
	sortByLastPurchase(rows)
	return rows
}

// BuildBothDetailTable monta a tabela da partição "ambos": os agregados
// consideram todas as vendas do cliente no período filtrado, e a coluna de
// produtos concatena a descrição vista em cada um dos dois produtos. Um lado
// sem descrição entra como vazio.
func BuildBothDetailTable(records []domain.SaleRecord, customerIDs map[string]bool, productA, productB string) []domain.CustomerDetailRow {
	if len(customerIDs) == 0 {
		return []domain.CustomerDetailRow{}
	}

	rows := aggregateByCustomer(records, customerIDs, false)

	descriptionsA := firstDescriptions(records, customerIDs, productA)
	descriptionsB := firstDescriptions(records, customerIDs, productB)
	for i := range rows {
		customerID := rows[i].CustomerID
		rows[i].ProductDescription = descriptionsA[customerID] + descriptionSeparator + descriptionsB[customerID]
	}

	sortByLastPurchase(rows)
	return rows
}

// firstDescriptions devolve, por cliente, a primeira descrição não nula vista
// na varredura entre as vendas do produto informado.
func firstDescriptions(records []domain.SaleRecord, customerIDs map[string]bool, productID string) map[string]string {
	descriptions := make(map[string]string)
	for _, rec := range records {
		if rec.ProductID != productID || !customerIDs[rec.CustomerID] {
			continue
		}
		if _, ok := descriptions[rec.CustomerID]; ok {
			continue
		}
		if rec.ProductDescription != nil {
			descriptions[rec.CustomerID] = *rec.ProductDescription
		}
	}
	return descriptions
}

// sortByLastPurchase ordena por última compra decrescente. A ordenação é
// estável para que empates preservem a ordem de emissão dos grupos.
func sortByLastPurchase(rows []domain.CustomerDetailRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].LastPurchase.After(rows[j].LastPurchase)
	})
}
