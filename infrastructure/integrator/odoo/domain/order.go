package odoodomain

import (
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/infrastructure/integrator/odoo/xmlrpc"
)

const (
	SaleOrderModel     = "sale.order"
	SaleOrderLineModel = "sale.order.line"
)

// Estados de pedido que representam vendas concluídas. Rascunhos e
// cancelados nunca entram nos agregados.
var CompletedOrderStates = []string{"sale", "done"}

// SaleOrderFields são os campos pedidos ao Odoo em cada search_read de
// pedidos de venda.
var SaleOrderFields = []string{
	"name",
	"date_order",
	"amount_total",
	"margin",
	"company_id",
	"order_line",
}

// SaleOrderLineFields são os campos pedidos por linha de pedido, usados
// apenas quando o detalhamento por produto está habilitado.
var SaleOrderLineFields = []string{
	"product_id",
	"price_total",
	"margin",
}

// Ref é uma referência many2one do Odoo: id interno mais nome de exibição.
type Ref struct {
	ID   int64
	Name string
}

// SaleOrder é um registro de pedido de venda como devolvido pelo Odoo.
// Campos vazios chegam como boolean false ou nil; eles decodificam para os
// valores zero daqui.
type SaleOrder struct {
	ID          int64
	Name        string
	DateOrder   string
	AmountTotal float64
	Margin      float64
	Company     *Ref
	LineIDs     []int64
}

// SaleOrderLine é uma linha de pedido de venda.
type SaleOrderLine struct {
	ID         int64
	Product    *Ref
	PriceTotal float64
	Margin     float64
}

// OrdersFromValues converte os registros crus de um search_read em pedidos.
// Entradas que não são structs são ignoradas.
func OrdersFromValues(records []xmlrpc.Value) []SaleOrder {
	orders := make([]SaleOrder, 0, len(records))

	for _, record := range records {
		if record.Kind() != xmlrpc.KindStruct {
			continue
		}

		order := SaleOrder{
			ID:          memberInt(record, "id"),
			Name:        memberText(record, "name"),
			DateOrder:   memberText(record, "date_order"),
			AmountTotal: memberNumber(record, "amount_total"),
			Margin:      memberNumber(record, "margin"),
			Company:     memberRef(record, "company_id"),
			LineIDs:     memberIntList(record, "order_line"),
		}

		orders = append(orders, order)
	}

	return orders
}

// OrderLinesFromValues converte os registros crus de um search_read em
// linhas de pedido.
func OrderLinesFromValues(records []xmlrpc.Value) []SaleOrderLine {
	lines := make([]SaleOrderLine, 0, len(records))

	for _, record := range records {
		if record.Kind() != xmlrpc.KindStruct {
			continue
		}

		lines = append(lines, SaleOrderLine{
			ID:         memberInt(record, "id"),
			Product:    memberRef(record, "product_id"),
			PriceTotal: memberNumber(record, "price_total"),
			Margin:     memberNumber(record, "margin"),
		})
	}

	return lines
}

func memberText(record xmlrpc.Value, name string) string {
	member, _ := record.Member(name)
	return member.Text()
}

func memberInt(record xmlrpc.Value, name string) int64 {
	member, _ := record.Member(name)
	return member.Int()
}

// memberNumber aceita int ou double; campos vazios (nil ou false) somam zero
// sem descartar o registro.
func memberNumber(record xmlrpc.Value, name string) float64 {
	member, _ := record.Member(name)
	return member.Number()
}

// memberRef decodifica um many2one, que o Odoo devolve como [id, nome]
// quando preenchido e como boolean false quando vazio.
func memberRef(record xmlrpc.Value, name string) *Ref {
	member, ok := record.Member(name)
	if !ok || member.Kind() != xmlrpc.KindArray {
		return nil
	}

	items := member.Items()
	if len(items) < 2 {
		return nil
	}

	return &Ref{ID: items[0].Int(), Name: items[1].Text()}
}

func memberIntList(record xmlrpc.Value, name string) []int64 {
	member, ok := record.Member(name)
	if !ok || member.Kind() != xmlrpc.KindArray {
		return nil
	}

	items := member.Items()
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if item.Kind() == xmlrpc.KindInt {
			ids = append(ids, item.Int())
		}
	}

	return ids
}
