package xmlrpc

import (
	"fmt"
	"strconv"
	"strings"
)

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Marshal monta o documento <methodCall> esperado pelo endpoint XML-RPC do
// Odoo, com um <param> por argumento posicional.
func Marshal(method string, params []Value) []byte {
	var b strings.Builder

	b.WriteString(`<?xml version="1.0"?>`)
	b.WriteString("\n<methodCall><methodName>")
	b.WriteString(escaper.Replace(method))
	b.WriteString("</methodName><params>")

	for _, param := range params {
		b.WriteString("<param>")
		writeValue(&b, param)
		b.WriteString("</param>")
	}

	b.WriteString("</params></methodCall>")

	return []byte(b.String())
}

// MarshalResponse monta um documento <methodResponse> com um único valor de
// retorno. O lado servidor do protocolo existe apenas para os testes de
// ida e volta do codec e para simular o Odoo em testes de transporte.
func MarshalResponse(result Value) []byte {
	var b strings.Builder

	b.WriteString(`<?xml version="1.0"?>`)
	b.WriteString("\n<methodResponse><params><param>")
	writeValue(&b, result)
	b.WriteString("</param></params></methodResponse>")

	return []byte(b.String())
}

// MarshalFault monta um documento <methodResponse> de falha no formato que o
// Odoo devolve quando rejeita uma chamada.
func MarshalFault(code int64, message string) []byte {
	fault := NewStruct(map[string]Value{
		"faultCode":   NewInt(code),
		"faultString": NewString(message),
	})

	var b strings.Builder

	b.WriteString(`<?xml version="1.0"?>`)
	b.WriteString("\n<methodResponse><fault>")
	writeValue(&b, fault)
	b.WriteString("</fault></methodResponse>")

	return []byte(b.String())
}

func writeValue(b *strings.Builder, v Value) {
	b.WriteString("<value>")

	switch v.kind {
	case KindNil:
		b.WriteString("<nil/>")
	case KindBool:
		if v.b {
			b.WriteString("<boolean>1</boolean>")
		} else {
			b.WriteString("<boolean>0</boolean>")
		}
	case KindInt:
		fmt.Fprintf(b, "<int>%d</int>", v.i)
	case KindDouble:
		b.WriteString("<double>")
		b.WriteString(strconv.FormatFloat(v.f, 'f', -1, 64))
		b.WriteString("</double>")
	case KindString:
		b.WriteString("<string>")
		b.WriteString(escaper.Replace(v.s))
		b.WriteString("</string>")
	case KindArray:
		b.WriteString("<array><data>")
		for _, item := range v.arr {
			writeValue(b, item)
		}
		b.WriteString("</data></array>")
	case KindStruct:
		b.WriteString("<struct>")
		for name, member := range v.obj {
			b.WriteString("<member><name>")
			b.WriteString(escaper.Replace(name))
			b.WriteString("</name>")
			writeValue(b, member)
			b.WriteString("</member>")
		}
		b.WriteString("</struct>")
	}

	b.WriteString("</value>")
}
