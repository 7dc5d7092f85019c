package gemini

import (
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/infrastructure/integrator/gemini/geminiclient"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/config"
)

// GeminiIntegrator gera respostas do modelo a partir de uma instrução de
// sistema e da pergunta do usuário. A chave da API vive só no servidor.
type GeminiIntegrator interface {
	GenerateAnswer(systemInstruction, userInput string) (string, error)
}

type GeminiService struct {
	cfg    *config.Config
	Client geminiclient.Client
}

func New(cfg *config.Config, client geminiclient.Client) GeminiIntegrator {
	return &GeminiService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *GeminiService) GenerateAnswer(systemInstruction, userInput string) (string, error) {
	return s.Client.GenerateContent(systemInstruction, userInput)
}
