package domain

import "time"

// Identificadores das três partições de clientes de uma análise.
const (
	PartitionOnlyA = "only-a"
	PartitionOnlyB = "only-b"
	PartitionBoth  = "both"
)

// AnalysisRequest reúne os parâmetros de uma rodada de análise de venda
// cruzada: período, par de produtos e filtros categóricos.
type AnalysisRequest struct {
	StartDate time.Time   `json:"start_date"`
	EndDate   time.Time   `json:"end_date"`
	ProductA  string      `json:"product_a"`
	ProductB  string      `json:"product_b"`
	Filters   SaleFilters `json:"filters"`
}

// CrossSellResult carrega as partições de clientes calculadas para um par de
// produtos. Os três conjuntos OnlyA, OnlyB e Both são disjuntos e a união
// deles é exatamente CustomersA ∪ CustomersB.
type CrossSellResult struct {
	CustomersA map[string]bool
	CustomersB map[string]bool
	OnlyA      map[string]bool
	OnlyB      map[string]bool
	Both       map[string]bool
}

// TotalA retorna o número de clientes distintos que compraram o produto A.
func (r *CrossSellResult) TotalA() int { return len(r.CustomersA) }

// TotalB retorna o número de clientes distintos que compraram o produto B.
func (r *CrossSellResult) TotalB() int { return len(r.CustomersB) }

// CustomerDetailRow é uma linha da tabela de detalhamento: um cliente da
// partição com os agregados das suas vendas no período filtrado.
type CustomerDetailRow struct {
	CustomerID         string    `json:"customer_id"`
	LegalName          string    `json:"legal_name"`
	City               string    `json:"city"`
	Activity           string    `json:"activity"`
	Network            string    `json:"network"`
	LastSalesperson    string    `json:"last_salesperson"`
	ProductDescription string    `json:"product_description"`
	LastPurchase       time.Time `json:"last_purchase"`
	TotalQuantity      float64   `json:"total_quantity"`
}

// CrossSellSummary é o bloco de métricas exibido no topo do painel.
type CrossSellSummary struct {
	TotalA         int     `json:"total_a"`
	TotalB         int     `json:"total_b"`
	OnlyA          int     `json:"only_a"`
	OnlyB          int     `json:"only_b"`
	Both           int     `json:"both"`
	TotalCustomers int     `json:"total_customers"`
	ConversionRate float64 `json:"conversion_rate"`
	RecordCount    int     `json:"record_count"`
}

// VennDiagram são as cardinalidades dos subconjuntos que o frontend usa para
// desenhar o diagrama.
type VennDiagram struct {
	LabelA string `json:"label_a"`
	LabelB string `json:"label_b"`
	OnlyA  int    `json:"only_a"`
	OnlyB  int    `json:"only_b"`
	Both   int    `json:"both"`
}

// BarChart são as barras na ordem de exibição do painel original:
// apenas A, ambos, apenas B.
type BarChart struct {
	Categories []string `json:"categories"`
	Values     []int    `json:"values"`
}

// DetailTables agrupa as três tabelas de detalhamento de clientes.
type DetailTables struct {
	OnlyA []CustomerDetailRow `json:"only_a"`
	OnlyB []CustomerDetailRow `json:"only_b"`
	Both  []CustomerDetailRow `json:"both"`
}

// CrossSellAnalysis é a resposta completa de uma rodada de análise.
type CrossSellAnalysis struct {
	Request *AnalysisRequest `json:"request"`
	Summary CrossSellSummary `json:"summary"`
	Venn    VennDiagram      `json:"venn"`
	Bar     BarChart         `json:"bar"`
	Tables  DetailTables     `json:"tables"`
}
