package xmlrpc

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// Response é o resultado de decodificar um <methodResponse> do Odoo. Quando
// IsFault é verdadeiro, FaultString carrega a mensagem da falha exatamente
// como o servidor a enviou e Value não tem significado.
type Response struct {
	Value       Value
	IsFault     bool
	FaultString string
}

type node struct {
	XMLName  xml.Name
	Text     string `xml:",chardata"`
	Children []node `xml:",any"`
}

// ParseResponse decodifica um documento <methodResponse>. XML que não pode
// ser interpretado é erro fatal de decodificação; etiquetas de tipo
// desconhecidas dentro de um <value> decodificam para nil, para tolerar
// variações entre versões do Odoo.
func ParseResponse(doc []byte) (*Response, error) {
	var root node
	if err := xml.Unmarshal(doc, &root); err != nil {
		return nil, fmt.Errorf("resposta XML-RPC malformada: %w", err)
	}

	if fault := root.child("fault"); fault != nil {
		return &Response{
			IsFault:     true,
			FaultString: faultString(fault),
		}, nil
	}

	resp := &Response{Value: NewNil()}

	params := root.child("params")
	if params == nil {
		return resp, nil
	}

	// O protocolo permite no máximo um <param> em respostas; lemos o
	// primeiro <value> encontrado.
	for _, param := range params.Children {
		if param.XMLName.Local != "param" {
			continue
		}
		if value := param.child("value"); value != nil {
			resp.Value = decodeValue(value)
			return resp, nil
		}
	}

	return resp, nil
}

func (n *node) child(name string) *node {
	for i := range n.Children {
		if n.Children[i].XMLName.Local == name {
			return &n.Children[i]
		}
	}
	return nil
}

func faultString(fault *node) string {
	value := fault.child("value")
	if value == nil {
		return ""
	}

	decoded := decodeValue(value)
	if decoded.Kind() != KindStruct {
		return ""
	}

	message, _ := decoded.Member("faultString")
	return message.Text()
}

func decodeValue(value *node) Value {
	// Um <value> sem etiqueta de tipo decodifica para nil (permissivo).
	if len(value.Children) == 0 {
		return NewNil()
	}

	typed := value.Children[0]
	text := strings.TrimSpace(typed.Text)

	switch typed.XMLName.Local {
	case "int", "i4":
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return NewNil()
		}
		return NewInt(i)
	case "double":
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return NewNil()
		}
		return NewDouble(f)
	case "string":
		return NewString(typed.Text)
	case "boolean":
		return NewBool(text == "1")
	case "array":
		var items []Value
		if data := typed.child("data"); data != nil {
			for i := range data.Children {
				if data.Children[i].XMLName.Local == "value" {
					items = append(items, decodeValue(&data.Children[i]))
				}
			}
		}
		return Value{kind: KindArray, arr: items}
	case "struct":
		members := make(map[string]Value)
		for i := range typed.Children {
			member := &typed.Children[i]
			if member.XMLName.Local != "member" {
				continue
			}
			name := member.child("name")
			memberValue := member.child("value")
			if name == nil || memberValue == nil {
				continue
			}
			// Nomes duplicados: o último membro vence.
			members[name.Text] = decodeValue(memberValue)
		}
		return Value{kind: KindStruct, obj: members}
	case "nil":
		return NewNil()
	default:
		return NewNil()
	}
}
