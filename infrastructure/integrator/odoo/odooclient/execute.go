package odooclient

import (
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/infrastructure/integrator/odoo/xmlrpc"
	"github.com/labs51pe-alt/Odoo-Sales-Dashboard-Chatbot/pkg/log"
)

// SearchRead executa object.execute_kw com o método search_read sobre um
// modelo do Odoo, filtrando pelo domínio informado e pedindo apenas os
// campos listados.
//
// Um resultado decodificado que não seja lista é tratado como zero
// registros em vez de erro: algumas versões do Odoo codificam resultados
// vazios de forma inusitada. O caso fica registrado em Warn para que uma
// deriva real de protocolo apareça nos logs.
func (c *OdooClient) SearchRead(uid int64, model string, domain []Condition, fields []string) ([]xmlrpc.Value, error) {
	conditions := make([]xmlrpc.Value, 0, len(domain))
	for _, condition := range domain {
		conditions = append(conditions, xmlrpc.NewArray(
			xmlrpc.NewString(condition.Field),
			xmlrpc.NewString(condition.Op),
			condition.Value,
		))
	}

	fieldValues := make([]xmlrpc.Value, 0, len(fields))
	for _, field := range fields {
		fieldValues = append(fieldValues, xmlrpc.NewString(field))
	}

	params := []xmlrpc.Value{
		xmlrpc.NewString(c.config.Odoo.Database),
		xmlrpc.NewInt(uid),
		xmlrpc.NewString(c.config.Odoo.Password),
		xmlrpc.NewString(model),
		xmlrpc.NewString("search_read"),
		xmlrpc.NewArray(xmlrpc.NewArray(conditions...)),
		xmlrpc.NewStruct(map[string]xmlrpc.Value{
			"fields": xmlrpc.NewArray(fieldValues...),
		}),
	}

	result, err := c.call(objectEndpoint, "execute_kw", params)
	if err != nil {
		return nil, err
	}

	if result.Kind() != xmlrpc.KindArray {
		log.L.WithFields(log.Fields{
			"model": model,
			"kind":  result.Kind(),
		}).Warn("odoo: search_read retornou resultado que não é lista, tratando como vazio")
		return nil, nil
	}

	return result.Items(), nil
}
