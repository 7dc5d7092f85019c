package odooclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/infrastructure/integrator/odoo/xmlrpc"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/internal/config"
)

const (
	commonEndpoint = "common"
	objectEndpoint = "object"
)

// Condition é um triplo [campo, operador, valor] de um domínio Odoo.
// Condições múltiplas são combinadas com AND pelo servidor.
type Condition struct {
	Field string
	Op    string
	Value xmlrpc.Value
}

type Client interface {
	Authenticate() (int64, error)
	SearchRead(uid int64, model string, domain []Condition, fields []string) ([]xmlrpc.Value, error)
}

type OdooClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Odoo.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &OdooClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}

// checkCredentials valida as quatro credenciais antes de qualquer chamada de
// rede, para que o erro nomeie exatamente a variável ausente.
func (c *OdooClient) checkCredentials() error {
	required := []struct {
		name  string
		value string
	}{
		{"ODOO_URL", c.config.Odoo.URL},
		{"ODOO_DB", c.config.Odoo.Database},
		{"ODOO_USER", c.config.Odoo.User},
		{"ODOO_PASSWORD", c.config.Odoo.Password},
	}

	for _, credential := range required {
		if credential.value == "" {
			return &ConfigurationError{Field: credential.name}
		}
	}

	return nil
}

// call executa uma ida e volta XML-RPC completa: monta o documento, envia,
// lê o corpo inteiro e traduz falhas de transporte, de decodificação e
// faults do servidor para os erros tipados deste pacote.
func (c *OdooClient) call(endpointName, method string, params []xmlrpc.Value) (xmlrpc.Value, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.httpClient.Timeout)
	defer cancel()

	endpoint, err := url.Parse(c.config.Odoo.URL)
	if err != nil {
		return xmlrpc.NewNil(), &TransportError{Err: err}
	}
	endpoint.Path = path.Join(endpoint.Path, "xmlrpc", "2", endpointName)

	body := xmlrpc.Marshal(method, params)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return xmlrpc.NewNil(), &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "text/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return xmlrpc.NewNil(), &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return xmlrpc.NewNil(), &TransportError{Status: resp.StatusCode}
	}

	// O corpo é lido por completo antes de decodificar; o protocolo não
	// tem consumo parcial.
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return xmlrpc.NewNil(), &TransportError{Err: err}
	}

	parsed, err := xmlrpc.ParseResponse(raw)
	if err != nil {
		return xmlrpc.NewNil(), &DecodeError{Err: err}
	}

	if parsed.IsFault {
		return xmlrpc.NewNil(), &RemoteCallError{Fault: parsed.FaultString}
	}

	return parsed.Value, nil
}
