package geminiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/config"
)

// ErrMissingAPIKey indica que GEMINI_API_KEY não foi configurada. Detectado
// antes de qualquer chamada de rede; a chave nunca aparece em logs.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set")

type Client interface {
	GenerateContent(systemInstruction, userInput string) (string, error)
}

type GeminiClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &GeminiClient{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		config: cfg,
	}
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentRequest struct {
	SystemInstruction *content  `json:"system_instruction,omitempty"`
	Contents          []content `json:"contents"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateContent chama o endpoint generateContent da API do Gemini com a
// instrução de sistema e a pergunta do usuário, e devolve o texto do
// primeiro candidato.
func (c *GeminiClient) GenerateContent(systemInstruction, userInput string) (string, error) {
	if c.config.Gemini.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	url := fmt.Sprintf(
		"%s/v1beta/models/%s:generateContent",
		strings.TrimRight(c.config.Gemini.BaseURL, "/"),
		c.config.Gemini.Model,
	)

	payload := generateContentRequest{
		Contents: []content{
			{Parts: []part{{Text: userInput}}},
		},
	}
	if systemInstruction != "" {
		payload.SystemInstruction = &content{Parts: []part{{Text: systemInstruction}}}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição para o Gemini")
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.config.Gemini.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao chamar a API do Gemini")
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var response generateContentResponse
	if err := json.Unmarshal(raw, &response); err != nil {
		return "", fmt.Errorf("failed to decode Gemini response: %w", err)
	}

	// A API devolve o detalhe do erro no corpo mesmo em status não-2xx.
	if response.Error != nil {
		return "", fmt.Errorf("Gemini API error: %s", response.Error.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Gemini request failed with status: %d", resp.StatusCode)
	}

	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("Gemini returned no candidates")
	}

	var text strings.Builder
	for _, candidatePart := range response.Candidates[0].Content.Parts {
		text.WriteString(candidatePart.Text)
	}

	return text.String(), nil
}
