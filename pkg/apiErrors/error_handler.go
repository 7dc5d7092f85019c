package apiErrors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/infrastructure/integrator/gemini/geminiclient"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/infrastructure/integrator/odoo/odooclient"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/usecases/assistant"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/usecases/reporting"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/usecases/tenancy"
)

// ErrorResponse é o corpo de erro padronizado da API. O front-end exibe a
// mensagem como está, então ela carrega o texto original do erro — é o
// sinal acionável para quem opera o sistema.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError traduz o erro para o status HTTP da taxonomia e escreve o
// corpo {"error": mensagem}. A mensagem nunca é parafraseada.
func WriteError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusFor(err))

	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
}

// statusFor distingue as categorias de erro: causadas pelo cliente (4xx),
// pela implantação (500) e pela infraestrutura ou pelo próprio ERP (502).
func statusFor(err error) int {
	var unmapped *tenancy.UnmappedCompanyError
	var configuration *odooclient.ConfigurationError
	var transport *odooclient.TransportError
	var remoteCall *odooclient.RemoteCallError
	var decode *odooclient.DecodeError

	switch {
	case errors.Is(err, reporting.ErrCompanyIDRequired),
		errors.Is(err, assistant.ErrMissingRequestFields):
		return http.StatusBadRequest
	case errors.As(err, &unmapped):
		return http.StatusNotFound
	case errors.As(err, &configuration),
		errors.Is(err, geminiclient.ErrMissingAPIKey):
		return http.StatusInternalServerError
	case errors.Is(err, odooclient.ErrAuthenticationFailed),
		errors.As(err, &transport),
		errors.As(err, &remoteCall),
		errors.As(err, &decode):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
