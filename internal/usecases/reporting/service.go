package reporting

import (
	"github.com/sirupsen/logrus"

	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/infrastructure/integrator/odoo"
	odoodomain "github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/infrastructure/integrator/odoo/domain"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/config"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/domain"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/usecases/tenancy"
)

// SalesReporter computa o agregado de vendas de uma empresa diretamente do
// ERP, sem cache: cada chamada resolve o tenant, reautentica e refaz as
// consultas.
type SalesReporter interface {
	GetSalesByCompany(companyID string, filters *domain.SalesFilters) (*domain.SalesData, error)
}

type Service struct {
	cfg         *config.Config
	resolver    tenancy.Resolver
	odooService odoo.OdooIntegrator
}

func NewService(cfg *config.Config, resolver tenancy.Resolver, odooService odoo.OdooIntegrator) SalesReporter {
	return &Service{
		cfg:         cfg,
		resolver:    resolver,
		odooService: odooService,
	}
}

// GetSalesByCompany é o ponto de entrada que amarra o pipeline de uma
// requisição: resolver → autenticar → buscar pedidos → (opcional) buscar
// linhas → agregar. Qualquer erro é fatal para a requisição e sobe sem
// retentativa; nunca devolvemos um agregado vazio disfarçado de sucesso.
func (s *Service) GetSalesByCompany(companyID string, filters *domain.SalesFilters) (*domain.SalesData, error) {
	if companyID == "" {
		return nil, ErrCompanyIDRequired
	}

	// O resolver falha fechado antes de qualquer chamada ao ERP.
	odooID, err := s.resolver.Resolve(companyID)
	if err != nil {
		return nil, err
	}

	uid, err := s.odooService.Authenticate()
	if err != nil {
		return nil, err
	}

	orders, err := s.odooService.FetchSalesOrders(uid, odooID, filters)
	if err != nil {
		return nil, err
	}

	var lines []odoodomain.SaleOrderLine
	if s.cfg.Reporting.FetchOrderLines {
		lines, err = s.odooService.FetchOrderLines(uid, collectLineIDs(orders))
		if err != nil {
			return nil, err
		}
	}

	logrus.WithFields(logrus.Fields{
		"company_id":  companyID,
		"odoo_id":     odooID,
		"order_count": len(orders),
		"line_count":  len(lines),
	}).Debug("reporting: registros buscados do Odoo, agregando")

	return Aggregate(orders, lines, s.cfg.Reporting.TopProductsLimit), nil
}

// collectLineIDs junta as referências de linha de todos os pedidos para o
// fetch em lote.
func collectLineIDs(orders []odoodomain.SaleOrder) []int64 {
	var ids []int64
	for _, order := range orders {
		ids = append(ids, order.LineIDs...)
	}
	return ids
}
