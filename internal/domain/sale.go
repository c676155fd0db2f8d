package domain

import "time"

// SaleRecord representa uma linha de venda já juntada com os dados cadastrais
// do cliente e a descrição da mercadoria. Campos com ponteiro são colunas
// anuláveis no banco.
type SaleRecord struct {
	CustomerID         string    `json:"customer_id"`
	ProductID          string    `json:"product_id"`
	EmissionDate       time.Time `json:"emission_date"`
	NetValue           float64   `json:"net_value"`
	Quantity           float64   `json:"quantity"`
	Salesperson        *string   `json:"salesperson"`
	City               *string   `json:"city"`
	LegalName          *string   `json:"legal_name"`
	Activity           *string   `json:"activity"`
	Network            *string   `json:"network"`
	ProductDescription *string   `json:"product_description"`
}

// SaleFilters define os filtros categóricos da análise. Lista vazia significa
// "sem restrição" para aquele campo; listas preenchidas compõem com AND.
type SaleFilters struct {
	Cities      []string `json:"cities"`
	Salespeople []string `json:"salespeople"`
	Activities  []string `json:"activities"`
	Networks    []string `json:"networks"`
}

// IsEmpty indica se nenhum filtro impõe restrição.
func (f SaleFilters) IsEmpty() bool {
	return len(f.Cities) == 0 &&
		len(f.Salespeople) == 0 &&
		len(f.Activities) == 0 &&
		len(f.Networks) == 0
}
