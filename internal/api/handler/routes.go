package handler

import (
	"net/http"

	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/api/handler/router"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/config"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/scheduler"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/usecases/assistant"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Sales(service reporting.SalesReporter) []router.Route {
	return []router.Route{
		{
			Path:    "/sales/:companyId",
			Method:  http.MethodGet,
			Handler: GetSalesByCompany(service),
		},
	}
}

func Assistant(service assistant.Assistant) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/assistant/ask",
			Method:  http.MethodPost,
			Handler: AskAssistant(service),
		},
	}
}

// Diagnostics retorna as rotas de diagnóstico usadas pelo assistente de
// solução de problemas do front-end.
func Diagnostics(cfg *config.Config, checker *scheduler.ConnectionCheckService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/diagnostics/secrets",
			Method:  http.MethodGet,
			Handler: CheckSecrets(cfg),
		},
		{
			Path:    "/v1/diagnostics/odoo",
			Method:  http.MethodGet,
			Handler: OdooConnectionStatus(checker),
		},
	}
}
