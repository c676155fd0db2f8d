package crossselling

import (
	"time"

	"github.com/Rerimoura/venn-biz/internal/domain"
)

// customerGroup acumula as reduções de coluna de um cliente durante a
// varredura dos registros.
type customerGroup struct {
	row domain.CustomerDetailRow
	// data da venda que definiu o último vendedor, para o desempate por
	// data de emissão
	salespersonDate time.Time
	hasSalesperson  bool
}

// aggregateByCustomer agrupa os registros por cliente, na ordem de varredura,
// e aplica a redução de cada coluna de saída: razão social, cidade, atividade,
// rede e descrição usam a primeira ocorrência não nula; a quantidade é somada;
// a última compra é a maior data de emissão; o último vendedor é o da venda
// de maior data de emissão (empate resolvido a favor do registro mais tardio
// na varredura). Quando include não é nil, registros de clientes fora do
// conjunto são ignorados.
func aggregateByCustomer(records []domain.SaleRecord, include map[string]bool, withDescription bool) []domain.CustomerDetailRow {
	order := make([]string, 0)
	groups := make(map[string]*customerGroup)

	for _, rec := range records {
		if include != nil && !include[rec.CustomerID] {
			continue
		}

		group, ok := groups[rec.CustomerID]
		if !ok {
			group = &customerGroup{row: domain.CustomerDetailRow{CustomerID: rec.CustomerID}}
			groups[rec.CustomerID] = group
			order = append(order, rec.CustomerID)
		}

		reduceFirst(&group.row.LegalName, rec.LegalName)
		reduceFirst(&group.row.City, rec.City)
		reduceFirst(&group.row.Activity, rec.Activity)
		reduceFirst(&group.row.Network, rec.Network)
		if withDescription {
			reduceFirst(&group.row.ProductDescription, rec.ProductDescription)
		}

		reduceSum(&group.row.TotalQuantity, rec.Quantity)
		reduceMaxDate(&group.row.LastPurchase, rec.EmissionDate)
		reduceSalesperson(group, rec)
	}

	rows := make([]domain.CustomerDetailRow, 0, len(order))
	for _, customerID := range order {
		rows = append(rows, groups[customerID].row)
	}

	return rows
}

// reduceFirst guarda a primeira ocorrência não nula da coluna.
func reduceFirst(dst *string, value *string) {
	if *dst == "" && value != nil {
		*dst = *value
	}
}

func reduceSum(dst *float64, value float64) {
	*dst += value
}

func reduceMaxDate(dst *time.Time, value time.Time) {
	if value.After(*dst) {
		*dst = value
	}
}

// reduceSalesperson mantém o vendedor associado à venda de maior data de
// emissão entre as que têm vendedor informado.
func reduceSalesperson(group *customerGroup, rec domain.SaleRecord) {
	if rec.Salesperson == nil {
		return
	}
	if group.hasSalesperson && rec.EmissionDate.Before(group.salespersonDate) {
		return
	}
	group.row.LastSalesperson = *rec.Salesperson
	group.salespersonDate = rec.EmissionDate
	group.hasSalesperson = true
}
