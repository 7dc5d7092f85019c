package odoo

import (
	"time"

	odoodomain "github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/infrastructure/integrator/odoo/domain"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/infrastructure/integrator/odoo/odooclient"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/infrastructure/integrator/odoo/xmlrpc"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/config"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/domain"
)

// OdooIntegrator expõe as operações do ERP que o núcleo de agregação usa.
// Authenticate devolve o uid de sessão que escopa os dois fetches de uma
// mesma requisição.
type OdooIntegrator interface {
	Authenticate() (int64, error)
	FetchSalesOrders(uid int64, companyOdooID int, filters *domain.SalesFilters) ([]odoodomain.SaleOrder, error)
	FetchOrderLines(uid int64, lineIDs []int64) ([]odoodomain.SaleOrderLine, error)
	CheckConnection() error
}

type OdooService struct {
	cfg    *config.Config
	Client odooclient.Client
}

func New(cfg *config.Config, client odooclient.Client) OdooIntegrator {
	return &OdooService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *OdooService) Authenticate() (int64, error) {
	return s.Client.Authenticate()
}

// FetchSalesOrders busca os pedidos de venda concluídos de uma empresa. O id
// da empresa é sempre o id interno do Odoo já resolvido, nunca o
// identificador externo do tenant.
func (s *OdooService) FetchSalesOrders(uid int64, companyOdooID int, filters *domain.SalesFilters) ([]odoodomain.SaleOrder, error) {
	states := make([]xmlrpc.Value, 0, len(odoodomain.CompletedOrderStates))
	for _, state := range odoodomain.CompletedOrderStates {
		states = append(states, xmlrpc.NewString(state))
	}

	conditions := []odooclient.Condition{
		{Field: "company_id", Op: "=", Value: xmlrpc.NewInt(int64(companyOdooID))},
		{Field: "state", Op: "in", Value: xmlrpc.NewArray(states...)},
	}

	if filters != nil && filters.StartDate != nil {
		conditions = append(conditions, odooclient.Condition{
			Field: "date_order",
			Op:    ">=",
			Value: xmlrpc.NewString(filters.StartDate.Format(time.DateOnly)),
		})
	}

	if filters != nil && filters.EndDate != nil {
		conditions = append(conditions, odooclient.Condition{
			Field: "date_order",
			Op:    "<=",
			Value: xmlrpc.NewString(filters.EndDate.Format(time.DateOnly) + " 23:59:59"),
		})
	}

	records, err := s.Client.SearchRead(uid, odoodomain.SaleOrderModel, conditions, odoodomain.SaleOrderFields)
	if err != nil {
		return nil, err
	}

	return odoodomain.OrdersFromValues(records), nil
}

// FetchOrderLines busca as linhas referenciadas pelos pedidos em uma única
// chamada com filtro "id in [...]", nunca uma chamada por pedido.
func (s *OdooService) FetchOrderLines(uid int64, lineIDs []int64) ([]odoodomain.SaleOrderLine, error) {
	if len(lineIDs) == 0 {
		return nil, nil
	}

	ids := make([]xmlrpc.Value, 0, len(lineIDs))
	for _, id := range lineIDs {
		ids = append(ids, xmlrpc.NewInt(id))
	}

	conditions := []odooclient.Condition{
		{Field: "id", Op: "in", Value: xmlrpc.NewArray(ids...)},
	}

	records, err := s.Client.SearchRead(uid, odoodomain.SaleOrderLineModel, conditions, odoodomain.SaleOrderLineFields)
	if err != nil {
		return nil, err
	}

	return odoodomain.OrderLinesFromValues(records), nil
}

// CheckConnection valida credenciais e alcance do ERP com uma autenticação
// de ida e volta, sem consultar dados.
func (s *OdooService) CheckConnection() error {
	_, err := s.Client.Authenticate()
	return err
}
