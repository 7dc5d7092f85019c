package assistant

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/infrastructure/integrator/gemini"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/config"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/domain"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/pkg/utils"
)

// ErrMissingRequestFields indica corpo de requisição incompleto. A mensagem
// replica o contrato que o front-end já trata.
var ErrMissingRequestFields = errors.New("Request body is missing 'userInput', 'company', or 'salesData'")

// Assistant responde perguntas em linguagem natural sobre o agregado de
// vendas que acompanha a pergunta.
type Assistant interface {
	Ask(req *domain.AssistantRequest) (*domain.AssistantResponse, error)
}

type Service struct {
	cfg           *config.Config
	geminiService gemini.GeminiIntegrator
}

func NewService(cfg *config.Config, geminiService gemini.GeminiIntegrator) Assistant {
	return &Service{
		cfg:           cfg,
		geminiService: geminiService,
	}
}

func (s *Service) Ask(req *domain.AssistantRequest) (*domain.AssistantResponse, error) {
	if req == nil || req.UserInput == "" || req.Company == nil || req.SalesData == nil {
		return nil, ErrMissingRequestFields
	}

	// ID curto só para correlacionar os logs de uma interação.
	interactionID, _ := utils.GenerateID()

	logger := logrus.WithFields(logrus.Fields{
		"interaction_id": interactionID,
		"company_id":     req.Company.ID,
	})
	logger.Info("assistant: forwarding question to Gemini")

	text, err := s.geminiService.GenerateAnswer(systemInstruction(req.Company, req.SalesData), req.UserInput)
	if err != nil {
		logger.WithError(err).Error("assistant: Gemini call failed")
		return nil, err
	}

	return &domain.AssistantResponse{Text: text}, nil
}

// systemInstruction monta o prompt de analista em torno do nome da empresa
// e do JSON de vendas que o usuário está vendo.
func systemInstruction(company *domain.Company, salesData *domain.SalesData) string {
	return fmt.Sprintf(`You are an expert sales data analyst and assistant for the company "%s".
Your role is to provide clear, concise, and insightful answers about the company's sales performance based on the JSON data provided.
When asked about data, refer to the provided JSON. Do not invent or hallucinate data.
Format your answers in a user-friendly way. Use Markdown for lists, bolding, and italics where appropriate to improve readability.
Analyze the following sales data:
%s
`, company.Name, utils.PrettyJson(salesData))
}
