package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/domain"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/usecases/assistant"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/pkg/apiErrors"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/pkg/log"
)

// AskAssistant atende POST /v1/assistant/ask: encaminha a pergunta ao
// Gemini com os dados de vendas do corpo e devolve {"text": resposta}.
func AskAssistant(service assistant.Assistant) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.AssistantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("assistant: invalid request body")

			apiErrors.WriteError(w, assistant.ErrMissingRequestFields)
			return
		}

		response, err := service.Ask(&req)
		if err != nil {
			logger.WithError(err).Error("assistant: failed to answer question")

			apiErrors.WriteError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("assistant: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
