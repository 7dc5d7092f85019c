package odooclient

import (
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/infrastructure/integrator/odoo/xmlrpc"
)

// Authenticate executa common.authenticate e devolve o uid da sessão. O uid
// vale por uma única requisição de agregação: cada requisição reautentica e
// o token nunca é persistido.
//
// Quando as credenciais são rejeitadas o Odoo responde boolean false em vez
// de um inteiro; qualquer resposta sem uid positivo vira
// ErrAuthenticationFailed.
func (c *OdooClient) Authenticate() (int64, error) {
	if err := c.checkCredentials(); err != nil {
		return 0, err
	}

	params := []xmlrpc.Value{
		xmlrpc.NewString(c.config.Odoo.Database),
		xmlrpc.NewString(c.config.Odoo.User),
		xmlrpc.NewString(c.config.Odoo.Password),
		xmlrpc.NewStruct(map[string]xmlrpc.Value{}),
	}

	result, err := c.call(commonEndpoint, "authenticate", params)
	if err != nil {
		return 0, err
	}

	if result.Kind() != xmlrpc.KindInt || result.Int() <= 0 {
		return 0, ErrAuthenticationFailed
	}

	return result.Int(), nil
}
