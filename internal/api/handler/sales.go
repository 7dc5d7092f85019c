package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/domain"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/usecases/reporting"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/pkg/apiErrors"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/pkg/log"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/pkg/utils"
)

// GetSalesByCompany atende GET /sales/:companyId e devolve o agregado de
// vendas recomputado a partir do Odoo. Erros saem como {"error": mensagem}
// com o status da taxonomia — nunca um agregado vazio fingindo sucesso.
func GetSalesByCompany(service reporting.SalesReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		companyID := httprouter.ParamsFromContext(r.Context()).ByName("companyId")
		logger.WithField("company_id", companyID).Info("sales: fetching sales data for company")

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"company_id": companyID,
				"start_date": r.URL.Query().Get("start_date"),
				"error":      err.Error(),
			}).Warn("sales: invalid start_date parameter")

			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"company_id": companyID,
				"end_date":   r.URL.Query().Get("end_date"),
				"error":      err.Error(),
			}).Warn("sales: invalid end_date parameter")

			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		filters := &domain.SalesFilters{
			StartDate: startDate,
			EndDate:   endDate,
		}

		salesData, err := service.GetSalesByCompany(companyID, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"company_id": companyID,
				"error":      err.Error(),
			}).Error("sales: failed to get sales data for company")

			apiErrors.WriteError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"company_id":  companyID,
			"order_count": salesData.OrderCount,
		}).Info("sales: successfully aggregated sales data")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(salesData); err != nil {
			logger.WithFields(log.Fields{
				"company_id": companyID,
				"error":      err.Error(),
			}).Error("sales: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
