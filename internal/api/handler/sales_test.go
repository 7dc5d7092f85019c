package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/infrastructure/integrator/odoo/odooclient"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/api/handler/router"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/domain"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/usecases/tenancy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubReporter permite controlar a resposta do caso de uso por teste.
type stubReporter struct {
	fn func(companyID string, filters *domain.SalesFilters) (*domain.SalesData, error)
}

func (s *stubReporter) GetSalesByCompany(companyID string, filters *domain.SalesFilters) (*domain.SalesData, error) {
	return s.fn(companyID, filters)
}

func newSalesRouter(reporter *stubReporter) router.Router {
	return router.New(router.WithRoutes(Sales(reporter)...))
}

func TestGetSalesByCompany_ContratoJSON(t *testing.T) {
	reporter := &stubReporter{
		fn: func(companyID string, filters *domain.SalesFilters) (*domain.SalesData, error) {
			assert.Equal(t, "botica-angie", companyID)
			return &domain.SalesData{
				TotalSales:  150,
				TotalProfit: 25,
				OrderCount:  2,
				SalesByProduct: []domain.ProductSales{
					{Name: "Paracetamol", Sales: 140, Profit: 23},
				},
				MonthlySales: []domain.MonthlySales{
					{Month: "2024-01", Sales: 100, Profit: 20},
					{Month: "2024-02", Sales: 50, Profit: 5},
				},
				SalesBySede: []domain.SalesBySede{
					{Sede: "North", TotalVentas: 150, Ganancia: 25, NumOrdenes: 2},
				},
			}, nil
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/sales/botica-angie", nil)

	newSalesRouter(reporter).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	// As chaves do contrato, incluindo as em espanhol do rollup por sede
	assert.Equal(t, 150.0, body["totalSales"])
	assert.Equal(t, 25.0, body["totalProfit"])
	assert.Equal(t, 2.0, body["orderCount"])

	sedes := body["salesBySede"].([]any)
	require.Len(t, sedes, 1)
	sede := sedes[0].(map[string]any)
	assert.Equal(t, "North", sede["sede"])
	assert.Equal(t, 150.0, sede["total_ventas"])
	assert.Equal(t, 25.0, sede["ganancia"])
	assert.Equal(t, 2.0, sede["num_ordenes"])

	months := body["monthlySales"].([]any)
	require.Len(t, months, 2)
	assert.Equal(t, "2024-01", months[0].(map[string]any)["month"])
}

func TestGetSalesByCompany_FiltrosDeData(t *testing.T) {
	var captured *domain.SalesFilters

	reporter := &stubReporter{
		fn: func(_ string, filters *domain.SalesFilters) (*domain.SalesData, error) {
			captured = filters
			return &domain.SalesData{}, nil
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/sales/botica-angie?start_date=2024-01-01&end_date=2024-03-31", nil)

	newSalesRouter(reporter).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	require.NotNil(t, captured.StartDate)
	require.NotNil(t, captured.EndDate)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *captured.StartDate)
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), *captured.EndDate)
}

func TestGetSalesByCompany_DataInvalida(t *testing.T) {
	reporter := &stubReporter{
		fn: func(_ string, _ *domain.SalesFilters) (*domain.SalesData, error) {
			t.Fatal("o caso de uso não deve ser chamado com filtro inválido")
			return nil, nil
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/sales/botica-angie?start_date=15-01-2024", nil)

	newSalesRouter(reporter).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSalesByCompany_MapeamentoDeErros(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "Empresa sem mapeamento",
			err:        &tenancy.UnmappedCompanyError{CompanyID: "unknown-co"},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"No Odoo ID mapping found for company: unknown-co"}`,
		},
		{
			name:       "Credencial ausente",
			err:        &odooclient.ConfigurationError{Field: "ODOO_PASSWORD"},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"missing required Odoo credential: ODOO_PASSWORD"}`,
		},
		{
			name:       "Autenticação rejeitada",
			err:        odooclient.ErrAuthenticationFailed,
			wantStatus: http.StatusBadGateway,
			wantBody:   `{"error":"Odoo authentication failed: invalid credentials or database"}`,
		},
		{
			name:       "Fault do ERP com a mensagem intacta",
			err:        &odooclient.RemoteCallError{Fault: "Invalid field 'margin' on model 'sale.order'"},
			wantStatus: http.StatusBadGateway,
			wantBody:   `{"error":"Invalid field 'margin' on model 'sale.order'"}`,
		},
		{
			name:       "Falha de transporte",
			err:        &odooclient.TransportError{Status: 503},
			wantStatus: http.StatusBadGateway,
			wantBody:   `{"error":"Odoo request failed with status: 503"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reporter := &stubReporter{
				fn: func(_ string, _ *domain.SalesFilters) (*domain.SalesData, error) {
					return nil, tt.err
				},
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/sales/botica-angie", nil)

			newSalesRouter(reporter).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
