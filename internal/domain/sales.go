package domain

import "time"

// SalesData é o único tipo de saída do núcleo de agregação. É recomputado
// por completo a cada requisição; nunca é mutado incrementalmente nem
// cacheado entre requisições. Os nomes de campo seguem o contrato JSON do
// dashboard (salesBySede mantém as chaves em espanhol).
type SalesData struct {
	TotalSales     float64        `json:"totalSales"`
	TotalProfit    float64        `json:"totalProfit"`
	OrderCount     int            `json:"orderCount"`
	SalesByProduct []ProductSales `json:"salesByProduct"`
	MonthlySales   []MonthlySales `json:"monthlySales"`
	SalesBySede    []SalesBySede  `json:"salesBySede"`
}

// SalesBySede é o rollup por sede (sucursal): uma entrada por nome de sede
// observado, com somas e contagem de pedidos.
type SalesBySede struct {
	Sede        string  `json:"sede"`
	TotalVentas float64 `json:"total_ventas"`
	Ganancia    float64 `json:"ganancia"`
	NumOrdenes  int     `json:"num_ordenes"`
}

// ProductSales é o rollup por produto, truncado ao top-N por vendas.
type ProductSales struct {
	Name   string  `json:"name"`
	Sales  float64 `json:"sales"`
	Profit float64 `json:"profit"`
}

// MonthlySales é o rollup por mês calendário (rótulo ISO ano-mês). Só
// aparecem meses com pelo menos um pedido.
type MonthlySales struct {
	Month  string  `json:"month"`
	Sales  float64 `json:"sales"`
	Profit float64 `json:"profit"`
}

// SalesFilters restringe opcionalmente a consulta por data do pedido.
// Ponteiros nil significam sem limite.
type SalesFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}
