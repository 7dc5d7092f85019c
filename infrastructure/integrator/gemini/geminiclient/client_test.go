package geminiclient

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeminiConfig(serverURL string) *config.Config {
	return &config.Config{
		Gemini: config.Gemini{
			APIKey:  "test-key",
			Model:   "gemini-2.5-flash",
			BaseURL: serverURL,
		},
	}
}

func TestGenerateContent_ChaveAusente(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
	}))
	defer server.Close()

	cfg := newTestGeminiConfig(server.URL)
	cfg.Gemini.APIKey = ""

	client := NewClient(cfg)

	_, err := client.GenerateContent("instruction", "question")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Equal(t, int32(0), atomic.LoadInt32(&requests))
}

func TestGenerateContent_Sucesso(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		body, _ := io.ReadAll(r.Body)
		var payload map[string]any
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Contains(t, payload, "system_instruction")
		assert.Contains(t, payload, "contents")

		w.Write([]byte(`{
			"candidates": [
				{"content": {"parts": [{"text": "El mejor mes "}, {"text": "fue enero."}]}}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(newTestGeminiConfig(server.URL))

	text, err := client.GenerateContent("instruction", "¿Cuál fue el mejor mes?")
	assert.NoError(t, err)

	// Partes do candidato são concatenadas
	assert.Equal(t, "El mejor mes fue enero.", text)
}

func TestGenerateContent_ErroDaAPI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"code": 400, "message": "API key not valid"}}`))
	}))
	defer server.Close()

	client := NewClient(newTestGeminiConfig(server.URL))

	_, err := client.GenerateContent("instruction", "question")
	assert.EqualError(t, err, "Gemini API error: API key not valid")
}

func TestGenerateContent_StatusNaoOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(newTestGeminiConfig(server.URL))

	_, err := client.GenerateContent("instruction", "question")
	assert.EqualError(t, err, "Gemini request failed with status: 429")
}

func TestGenerateContent_SemCandidatos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	client := NewClient(newTestGeminiConfig(server.URL))

	_, err := client.GenerateContent("instruction", "question")
	assert.EqualError(t, err, "Gemini returned no candidates")
}
