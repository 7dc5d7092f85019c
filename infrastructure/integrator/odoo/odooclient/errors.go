package odooclient

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrAuthenticationFailed indica que o Odoo rejeitou as credenciais: a
// chamada common.authenticate respondeu, mas sem um uid positivo.
var ErrAuthenticationFailed = errors.New("Odoo authentication failed: invalid credentials or database")

// ConfigurationError indica uma credencial obrigatória ausente. Field é o
// nome da variável de ambiente que falta, porque esse nome é o que o
// operador precisa para corrigir a implantação.
type ConfigurationError struct {
	Field string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required Odoo credential: %s", e.Field)
}

// TransportError indica falha de rede ou HTTP antes de qualquer resposta
// XML-RPC utilizável. Status é zero quando a requisição nem chegou a obter
// um status HTTP.
type TransportError struct {
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("Odoo request failed with status: %d", e.Status)
	}
	return fmt.Sprintf("Odoo request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RemoteCallError indica que o Odoo aceitou a conexão mas rejeitou a
// chamada. Fault carrega a faultString do servidor sem paráfrase; os
// operadores depuram a partir desse texto.
type RemoteCallError struct {
	Fault string
}

func (e *RemoteCallError) Error() string {
	return e.Fault
}

// DecodeError indica que o corpo da resposta não pôde ser interpretado como
// XML-RPC. Normalmente significa deriva de protocolo entre versões do Odoo.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode Odoo response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
