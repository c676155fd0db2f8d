package crossselling

import (
	"testing"
	"time"

	"github.com/Rerimoura/venn-biz/internal/domain"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func filterRecord(customerID string, city, salesperson, activity, network *string) domain.SaleRecord {
	return domain.SaleRecord{
		CustomerID:   customerID,
		ProductID:    "PA",
		EmissionDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		City:         city,
		Salesperson:  salesperson,
		Activity:     activity,
		Network:      network,
	}
}

func TestApplyFilters(t *testing.T) {
	records := []domain.SaleRecord{
		filterRecord("C1", strPtr("Belo Horizonte"), strPtr("CARLOS"), strPtr("Ótica"), strPtr("Rede Visão")),
		filterRecord("C2", strPtr("Uberlândia"), strPtr("MARIA"), strPtr("Ótica"), strPtr("Independente")),
		filterRecord("C3", strPtr("Belo Horizonte"), strPtr("MARIA"), strPtr("Distribuidora"), nil),
		filterRecord("C4", nil, nil, nil, nil),
	}

	tests := []struct {
		name     string
		filters  domain.SaleFilters
		expected []string
	}{
		{
			name:     "Sem filtros retorna todos os registros",
			filters:  domain.SaleFilters{},
			expected: []string{"C1", "C2", "C3", "C4"},
		},
		{
			name:     "Filtro de cidade preserva a ordem de entrada",
			filters:  domain.SaleFilters{Cities: []string{"Belo Horizonte"}},
			expected: []string{"C1", "C3"},
		},
		{
			name:     "Filtro com múltiplos valores aceita qualquer um deles",
			filters:  domain.SaleFilters{Cities: []string{"Belo Horizonte", "Uberlândia"}},
			expected: []string{"C1", "C2", "C3"},
		},
		{
			name: "Filtros combinados exigem todas as condições",
			filters: domain.SaleFilters{
				Cities:      []string{"Belo Horizonte"},
				Salespeople: []string{"MARIA"},
			},
			expected: []string{"C3"},
		},
		{
			name:     "Atributo nulo não satisfaz filtro preenchido",
			filters:  domain.SaleFilters{Networks: []string{"Rede Visão"}},
			expected: []string{"C1"},
		},
		{
			name:     "Filtro sem correspondência produz lista vazia",
			filters:  domain.SaleFilters{Activities: []string{"Farmácia"}},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := ApplyFilters(records, tt.filters)

			ids := make([]string, 0, len(filtered))
			for _, rec := range filtered {
				ids = append(ids, rec.CustomerID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestApplyFiltersNaoAlteraEntrada(t *testing.T) {
	records := []domain.SaleRecord{
		filterRecord("C1", strPtr("Belo Horizonte"), nil, nil, nil),
		filterRecord("C2", strPtr("Uberlândia"), nil, nil, nil),
	}

	_ = ApplyFilters(records, domain.SaleFilters{Cities: []string{"Uberlândia"}})

	assert.Len(t, records, 2)
	assert.Equal(t, "C1", records[0].CustomerID)
	assert.Equal(t, "C2", records[1].CustomerID)
}
