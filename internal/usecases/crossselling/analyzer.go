package crossselling

import (
	"github.com/Rerimoura/venn-biz/internal/domain"
)

// Analyze calcula as partições de clientes para o par de produtos informado:
// quem comprou apenas A, apenas B e quem comprou ambos. Função pura sobre os
// registros já filtrados; a validação de produtos distintos é do chamador.
func Analyze(records []domain.SaleRecord, productA, productB string) *domain.CrossSellResult {
	customersA := make(map[string]bool)
	customersB := make(map[string]bool)

	for _, rec := range records {
		switch rec.ProductID {
		case productA:
			customersA[rec.CustomerID] = true
		case productB:
			customersB[rec.CustomerID] = true
		}
	}

	onlyA := make(map[string]bool)
	for customer := range customersA {
		if !customersB[customer] {
			onlyA[customer] = true
		}
	}

	onlyB := make(map[string]bool)
	for customer := range customersB {
		if !customersA[customer] {
			onlyB[customer] = true
		}
	}

	both := make(map[string]bool)
	for customer := range customersA {
		if customersB[customer] {
			both[customer] = true
		}
	}

	return &domain.CrossSellResult{
		CustomersA: customersA,
		CustomersB: customersB,
		OnlyA:      onlyA,
		OnlyB:      onlyB,
		Both:       both,
	}
}

// ConversionRate calcula a proporção de compradores de A que também compraram
// B, em percentual. Retorna 0 quando não há compradores de A.
func ConversionRate(result *domain.CrossSellResult) float64 {
	if result.TotalA() == 0 {
		return 0
	}
	return float64(len(result.Both)) / float64(result.TotalA()) * 100
}
