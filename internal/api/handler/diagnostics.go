package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/config"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/domain"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/scheduler"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/pkg/log"
)

// CheckSecrets informa quais segredos obrigatórios estão configurados, sem
// nunca expor valores. É o que alimenta o assistente de solução de
// problemas do front-end quando o dashboard não carrega.
func CheckSecrets(cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		statuses := []domain.SecretStatus{
			{
				Name:        "ODOO_URL",
				IsSet:       cfg.Odoo.URL != "",
				Description: "Required for fetching sales data from Odoo.",
			},
			{
				Name:        "ODOO_DB",
				IsSet:       cfg.Odoo.Database != "",
				Description: "Required for fetching sales data from Odoo.",
			},
			{
				Name:        "ODOO_USER",
				IsSet:       cfg.Odoo.User != "",
				Description: "Required for fetching sales data from Odoo.",
			},
			{
				Name:        "ODOO_PASSWORD",
				IsSet:       cfg.Odoo.Password != "",
				Description: "Required for fetching sales data from Odoo.",
			},
			{
				Name:        "GEMINI_API_KEY",
				IsSet:       cfg.Gemini.APIKey != "",
				Description: "Required for the AI Sales Assistant feature.",
			},
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(statuses); err != nil {
			logger.WithError(err).Error("diagnostics: failed to encode secrets status")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// OdooConnectionStatus executa uma verificação de conectividade ao vivo e
// devolve o resultado, junto com o estado da sonda agendada.
func OdooConnectionStatus(checker *scheduler.ConnectionCheckService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status := checker.CheckNow()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.WithError(err).Error("diagnostics: failed to encode Odoo connection status")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
