package reporting

import (
	"math/rand"
	"testing"

	odoodomain "github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/infrastructure/integrator/odoo/domain"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAggregate_TotaisESedes(t *testing.T) {
	orders := []odoodomain.SaleOrder{
		{
			ID:          1,
			Name:        "S00001",
			DateOrder:   "2024-01-15 10:30:00",
			AmountTotal: 100,
			Margin:      20,
			Company:     &odoodomain.Ref{ID: 1, Name: "North"},
		},
		{
			ID:          2,
			Name:        "S00002",
			DateOrder:   "2024-02-01 09:00:00",
			AmountTotal: 50,
			Margin:      5,
			Company:     &odoodomain.Ref{ID: 1, Name: "North"},
		},
	}

	result := Aggregate(orders, nil, DefaultTopProducts)

	assert.Equal(t, 150.0, result.TotalSales)
	assert.Equal(t, 25.0, result.TotalProfit)
	assert.Equal(t, 2, result.OrderCount)

	assert.Equal(t, []domain.SalesBySede{
		{Sede: "North", TotalVentas: 150, Ganancia: 25, NumOrdenes: 2},
	}, result.SalesBySede)

	assert.Equal(t, []domain.MonthlySales{
		{Month: "2024-01", Sales: 100, Profit: 20},
		{Month: "2024-02", Sales: 50, Profit: 5},
	}, result.MonthlySales)

	// Sem linhas de pedido, o detalhamento por produto nunca é fabricado
	assert.Empty(t, result.SalesByProduct)
}

func TestAggregate_EntradaVazia(t *testing.T) {
	result := Aggregate(nil, nil, DefaultTopProducts)

	assert.Equal(t, 0.0, result.TotalSales)
	assert.Equal(t, 0.0, result.TotalProfit)
	assert.Equal(t, 0, result.OrderCount)

	// Listas vazias, nunca nulas: o contrato JSON serializa [] e não null
	assert.NotNil(t, result.SalesByProduct)
	assert.NotNil(t, result.MonthlySales)
	assert.NotNil(t, result.SalesBySede)
	assert.Empty(t, result.SalesByProduct)
	assert.Empty(t, result.MonthlySales)
	assert.Empty(t, result.SalesBySede)
}

func TestAggregate_Determinismo(t *testing.T) {
	orders := []odoodomain.SaleOrder{
		{ID: 1, DateOrder: "2024-01-10 08:00:00", AmountTotal: 120.5, Margin: 30.25, Company: &odoodomain.Ref{ID: 1, Name: "Cusco"}},
		{ID: 2, DateOrder: "2024-01-20 08:00:00", AmountTotal: 80, Margin: 10, Company: &odoodomain.Ref{ID: 2, Name: "Lima"}},
		{ID: 3, DateOrder: "2024-02-05 08:00:00", AmountTotal: 200, Margin: 55, Company: &odoodomain.Ref{ID: 1, Name: "Cusco"}},
		{ID: 4, DateOrder: "2024-03-01 08:00:00", AmountTotal: 40, Margin: -5, Company: nil},
	}

	lines := []odoodomain.SaleOrderLine{
		{ID: 10, Product: &odoodomain.Ref{ID: 100, Name: "Paracetamol"}, PriceTotal: 60, Margin: 12},
		{ID: 11, Product: &odoodomain.Ref{ID: 101, Name: "Ibuprofeno"}, PriceTotal: 90, Margin: 20},
		{ID: 12, Product: &odoodomain.Ref{ID: 100, Name: "Paracetamol"}, PriceTotal: 30, Margin: 6},
	}

	expected := Aggregate(orders, lines, DefaultTopProducts)

	// A agregação é pura: qualquer permutação da entrada produz exatamente
	// a mesma saída, inclusive a ordenação dos rollups.
	for i := 0; i < 10; i++ {
		shuffledOrders := append([]odoodomain.SaleOrder(nil), orders...)
		shuffledLines := append([]odoodomain.SaleOrderLine(nil), lines...)
		rand.Shuffle(len(shuffledOrders), func(a, b int) {
			shuffledOrders[a], shuffledOrders[b] = shuffledOrders[b], shuffledOrders[a]
		})
		rand.Shuffle(len(shuffledLines), func(a, b int) {
			shuffledLines[a], shuffledLines[b] = shuffledLines[b], shuffledLines[a]
		})

		assert.Equal(t, expected, Aggregate(shuffledOrders, shuffledLines, DefaultTopProducts))
	}
}

func TestAggregate_SomaDosRamosIgualAoTotal(t *testing.T) {
	orders := []odoodomain.SaleOrder{
		{ID: 1, DateOrder: "2024-01-10 08:00:00", AmountTotal: 100.10, Margin: 10.01, Company: &odoodomain.Ref{ID: 1, Name: "A"}},
		{ID: 2, DateOrder: "2024-02-10 08:00:00", AmountTotal: 200.20, Margin: 20.02, Company: &odoodomain.Ref{ID: 2, Name: "B"}},
		{ID: 3, DateOrder: "2024-02-15 08:00:00", AmountTotal: 300.30, Margin: 30.03, Company: &odoodomain.Ref{ID: 1, Name: "A"}},
	}

	result := Aggregate(orders, nil, DefaultTopProducts)

	var sedeSales, sedeProfit float64
	var sedeOrders int
	for _, sede := range result.SalesBySede {
		sedeSales += sede.TotalVentas
		sedeProfit += sede.Ganancia
		sedeOrders += sede.NumOrdenes
	}

	assert.InDelta(t, result.TotalSales, sedeSales, 0.01)
	assert.InDelta(t, result.TotalProfit, sedeProfit, 0.01)
	assert.Equal(t, result.OrderCount, sedeOrders)

	var monthSales, monthProfit float64
	for _, month := range result.MonthlySales {
		monthSales += month.Sales
		monthProfit += month.Profit
	}

	assert.InDelta(t, result.TotalSales, monthSales, 0.01)
	assert.InDelta(t, result.TotalProfit, monthProfit, 0.01)
}

func TestAggregate_OrdenacaoDosRollups(t *testing.T) {
	orders := []odoodomain.SaleOrder{
		{ID: 1, DateOrder: "2024-03-10 08:00:00", AmountTotal: 50, Margin: 5, Company: &odoodomain.Ref{ID: 1, Name: "Menor"}},
		{ID: 2, DateOrder: "2024-01-10 08:00:00", AmountTotal: 300, Margin: 30, Company: &odoodomain.Ref{ID: 2, Name: "Maior"}},
		{ID: 3, DateOrder: "2024-02-10 08:00:00", AmountTotal: 100, Margin: 10, Company: &odoodomain.Ref{ID: 3, Name: "Meio"}},
	}

	result := Aggregate(orders, nil, DefaultTopProducts)

	// Sedes em ordem decrescente de vendas
	assert.Equal(t, "Maior", result.SalesBySede[0].Sede)
	assert.Equal(t, "Meio", result.SalesBySede[1].Sede)
	assert.Equal(t, "Menor", result.SalesBySede[2].Sede)

	// Meses em ordem cronológica
	assert.Equal(t, []string{"2024-01", "2024-02", "2024-03"}, []string{
		result.MonthlySales[0].Month,
		result.MonthlySales[1].Month,
		result.MonthlySales[2].Month,
	})
}

func TestAggregate_TopProdutos(t *testing.T) {
	lines := []odoodomain.SaleOrderLine{
		{ID: 1, Product: &odoodomain.Ref{ID: 1, Name: "P1"}, PriceTotal: 10, Margin: 1},
		{ID: 2, Product: &odoodomain.Ref{ID: 2, Name: "P2"}, PriceTotal: 50, Margin: 5},
		{ID: 3, Product: &odoodomain.Ref{ID: 3, Name: "P3"}, PriceTotal: 30, Margin: 3},
		{ID: 4, Product: &odoodomain.Ref{ID: 4, Name: "P4"}, PriceTotal: 20, Margin: 2},
	}

	result := Aggregate(nil, lines, 2)

	assert.Equal(t, []domain.ProductSales{
		{Name: "P2", Sales: 50, Profit: 5},
		{Name: "P3", Sales: 30, Profit: 3},
	}, result.SalesByProduct)
}

func TestAggregate_ReferenciasAusentes(t *testing.T) {
	// Campos many2one vazios decodificam como nil; o agregador agrupa sob os
	// rótulos de desconhecido em vez de descartar o registro.
	orders := []odoodomain.SaleOrder{
		{ID: 1, DateOrder: "2024-01-10 08:00:00", AmountTotal: 100, Margin: 10, Company: nil},
		{ID: 2, DateOrder: "2024-01-11 08:00:00", AmountTotal: 50, Margin: 5, Company: &odoodomain.Ref{ID: 1, Name: ""}},
	}

	lines := []odoodomain.SaleOrderLine{
		{ID: 1, Product: nil, PriceTotal: 70, Margin: 7},
	}

	result := Aggregate(orders, lines, DefaultTopProducts)

	assert.Len(t, result.SalesBySede, 1)
	assert.Equal(t, UnknownSede, result.SalesBySede[0].Sede)
	assert.Equal(t, 150.0, result.SalesBySede[0].TotalVentas)
	assert.Equal(t, 2, result.SalesBySede[0].NumOrdenes)

	assert.Len(t, result.SalesByProduct, 1)
	assert.Equal(t, UnknownProduct, result.SalesByProduct[0].Name)
}

func TestAggregate_DataIlegivel(t *testing.T) {
	orders := []odoodomain.SaleOrder{
		{ID: 1, DateOrder: "nao-e-data", AmountTotal: 100, Margin: 10, Company: &odoodomain.Ref{ID: 1, Name: "A"}},
		{ID: 2, DateOrder: "2024-01-10", AmountTotal: 50, Margin: 5, Company: &odoodomain.Ref{ID: 1, Name: "A"}},
	}

	result := Aggregate(orders, nil, DefaultTopProducts)

	// O pedido com data ilegível conta nos totais mas não gera entrada mensal
	assert.Equal(t, 150.0, result.TotalSales)
	assert.Equal(t, 2, result.OrderCount)
	assert.Equal(t, []domain.MonthlySales{
		{Month: "2024-01", Sales: 50, Profit: 5},
	}, result.MonthlySales)
}

func TestAggregate_ValoresAusentesContamNoTotal(t *testing.T) {
	orders := []odoodomain.SaleOrder{
		{ID: 1, DateOrder: "2024-01-10 08:00:00", AmountTotal: 0, Margin: 0, Company: &odoodomain.Ref{ID: 1, Name: "A"}},
		{ID: 2, DateOrder: "2024-01-11 08:00:00", AmountTotal: 100, Margin: 10, Company: &odoodomain.Ref{ID: 1, Name: "A"}},
	}

	result := Aggregate(orders, nil, DefaultTopProducts)

	assert.Equal(t, 100.0, result.TotalSales)
	assert.Equal(t, 2, result.OrderCount)
	assert.Equal(t, 2, result.SalesBySede[0].NumOrdenes)
}

func TestAggregate_ArredondamentoDuasCasas(t *testing.T) {
	orders := []odoodomain.SaleOrder{
		{ID: 1, DateOrder: "2024-01-10 08:00:00", AmountTotal: 0.1, Margin: 0.1, Company: &odoodomain.Ref{ID: 1, Name: "A"}},
		{ID: 2, DateOrder: "2024-01-11 08:00:00", AmountTotal: 0.2, Margin: 0.2, Company: &odoodomain.Ref{ID: 1, Name: "A"}},
	}

	result := Aggregate(orders, nil, DefaultTopProducts)

	assert.Equal(t, 0.3, result.TotalSales)
	assert.Equal(t, 0.3, result.SalesBySede[0].TotalVentas)
	assert.Equal(t, 0.3, result.MonthlySales[0].Sales)
}
