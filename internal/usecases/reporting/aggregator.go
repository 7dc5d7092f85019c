package reporting

import (
	"sort"
	"time"

	odoodomain "github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/infrastructure/integrator/odoo/domain"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/domain"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/pkg/utils"
)

const (
	// DefaultTopProducts limita o rollup por produto quando a configuração
	// não define outro valor.
	DefaultTopProducts = 10

	// Rótulos para registros sem referência de sede ou produto. O contrato
	// do dashboard fala espanhol.
	UnknownSede    = "Sin sede"
	UnknownProduct = "Sin producto"
)

// Layouts de data que o Odoo usa em date_order, conforme a versão.
var orderDateLayouts = []string{
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// Aggregate reduz um conjunto de pedidos (e opcionalmente suas linhas) nos
// agregados do dashboard. É uma transformação pura e determinística: sem
// I/O, sem estado, todos os rollups calculados sobre o mesmo conjunto
// buscado uma única vez.
//
// Entrada vazia produz totais zerados e listas vazias — estado válido, não
// erro. Pedidos com valores ausentes somam zero mas contam em orderCount.
func Aggregate(orders []odoodomain.SaleOrder, lines []odoodomain.SaleOrderLine, topProducts int) *domain.SalesData {
	if topProducts <= 0 {
		topProducts = DefaultTopProducts
	}

	data := &domain.SalesData{
		SalesByProduct: make([]domain.ProductSales, 0),
		MonthlySales:   make([]domain.MonthlySales, 0),
		SalesBySede:    make([]domain.SalesBySede, 0, len(orders)),
	}

	sedes := make(map[string]*domain.SalesBySede)
	months := make(map[string]*domain.MonthlySales)

	for _, order := range orders {
		data.TotalSales += order.AmountTotal
		data.TotalProfit += order.Margin
		data.OrderCount++

		sedeName := UnknownSede
		if order.Company != nil && order.Company.Name != "" {
			sedeName = order.Company.Name
		}

		sede, ok := sedes[sedeName]
		if !ok {
			sede = &domain.SalesBySede{Sede: sedeName}
			sedes[sedeName] = sede
		}
		sede.TotalVentas += order.AmountTotal
		sede.Ganancia += order.Margin
		sede.NumOrdenes++

		label, ok := monthLabel(order.DateOrder)
		if !ok {
			continue
		}

		month, found := months[label]
		if !found {
			month = &domain.MonthlySales{Month: label}
			months[label] = month
		}
		month.Sales += order.AmountTotal
		month.Profit += order.Margin
	}

	for _, sede := range sedes {
		sede.TotalVentas = utils.RoundWithTwoDecimalPlace(sede.TotalVentas)
		sede.Ganancia = utils.RoundWithTwoDecimalPlace(sede.Ganancia)
		data.SalesBySede = append(data.SalesBySede, *sede)
	}
	sort.Slice(data.SalesBySede, func(i, j int) bool {
		return data.SalesBySede[i].TotalVentas > data.SalesBySede[j].TotalVentas
	})

	for _, month := range months {
		month.Sales = utils.RoundWithTwoDecimalPlace(month.Sales)
		month.Profit = utils.RoundWithTwoDecimalPlace(month.Profit)
		data.MonthlySales = append(data.MonthlySales, *month)
	}
	// Rótulos ISO ano-mês ordenam cronologicamente como texto.
	sort.Slice(data.MonthlySales, func(i, j int) bool {
		return data.MonthlySales[i].Month < data.MonthlySales[j].Month
	})

	data.SalesByProduct = aggregateProducts(lines, topProducts)

	data.TotalSales = utils.RoundWithTwoDecimalPlace(data.TotalSales)
	data.TotalProfit = utils.RoundWithTwoDecimalPlace(data.TotalProfit)

	return data
}

// aggregateProducts agrupa as linhas por nome de produto, ordena por vendas
// decrescentes e trunca ao top-N. Sem linhas fornecidas o resultado é vazio:
// detalhamento por produto é opt-in e nunca é fabricado.
func aggregateProducts(lines []odoodomain.SaleOrderLine, topProducts int) []domain.ProductSales {
	products := make(map[string]*domain.ProductSales)

	for _, line := range lines {
		name := UnknownProduct
		if line.Product != nil && line.Product.Name != "" {
			name = line.Product.Name
		}

		product, ok := products[name]
		if !ok {
			product = &domain.ProductSales{Name: name}
			products[name] = product
		}
		product.Sales += line.PriceTotal
		product.Profit += line.Margin
	}

	result := make([]domain.ProductSales, 0, len(products))
	for _, product := range products {
		product.Sales = utils.RoundWithTwoDecimalPlace(product.Sales)
		product.Profit = utils.RoundWithTwoDecimalPlace(product.Profit)
		result = append(result, *product)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Sales > result[j].Sales
	})

	if len(result) > topProducts {
		result = result[:topProducts]
	}

	return result
}

// monthLabel deriva o rótulo ISO ano-mês (ex.: 2024-01) da data do pedido.
// Datas ilegíveis não geram entrada mensal; o pedido ainda conta nos totais.
func monthLabel(dateOrder string) (string, bool) {
	for _, layout := range orderDateLayouts {
		if parsed, err := time.Parse(layout, dateOrder); err == nil {
			return parsed.Format("2006-01"), true
		}
	}

	return "", false
}
