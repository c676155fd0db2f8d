package crossselling

import (
	"slices"

	"github.com/Rerimoura/venn-biz/internal/domain"
)

// ApplyFilters mantém apenas os registros que atendem a todos os filtros
// categóricos preenchidos. A ordem de entrada é preservada e o slice original
// não é alterado.
func ApplyFilters(records []domain.SaleRecord, filters domain.SaleFilters) []domain.SaleRecord {
	if filters.IsEmpty() {
		return records
	}

	filtered := make([]domain.SaleRecord, 0, len(records))
	for _, rec := range records {
		if !matchesFilter(rec.City, filters.Cities) {
			continue
		}
		if !matchesFilter(rec.Salesperson, filters.Salespeople) {
			continue
		}
		if !matchesFilter(rec.Activity, filters.Activities) {
			continue
		}
		if !matchesFilter(rec.Network, filters.Networks) {
			continue
		}
		filtered = append(filtered, rec)
	}

	return filtered
}

// matchesFilter aplica um filtro de pertencimento a um atributo anulável.
// Registro com atributo nulo nunca satisfaz um filtro preenchido.
func matchesFilter(value *string, accepted []string) bool {
	if len(accepted) == 0 {
		return true
	}
	if value == nil {
		return false
	}
	return slices.Contains(accepted, *value)
}
