package xmlrpc

// Kind identifica o tipo nativo transportado por um Value.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindDouble
	KindString
	KindArray
	KindStruct
)

// Value é uma variante etiquetada para os tipos suportados pelo protocolo
// XML-RPC do Odoo. O tipo de codificação é sempre decidido pelo construtor
// usado no ponto de chamada: um double de valor inteiro nunca é rebaixado
// para <int> por inferência.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	arr  []Value
	obj  map[string]Value
}

func NewNil() Value {
	return Value{kind: KindNil}
}

func NewBool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

func NewInt(i int64) Value {
	return Value{kind: KindInt, i: i}
}

func NewDouble(f float64) Value {
	return Value{kind: KindDouble, f: f}
}

func NewString(s string) Value {
	return Value{kind: KindString, s: s}
}

func NewArray(items ...Value) Value {
	return Value{kind: KindArray, arr: items}
}

func NewStruct(members map[string]Value) Value {
	obj := make(map[string]Value, len(members))
	for name, member := range members {
		obj[name] = member
	}
	return Value{kind: KindStruct, obj: obj}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) Bool() bool { return v.b }

func (v Value) Int() int64 { return v.i }

func (v Value) Double() float64 { return v.f }

// Text retorna o conteúdo de um valor string.
func (v Value) Text() string { return v.s }

func (v Value) Items() []Value { return v.arr }

func (v Value) Members() map[string]Value { return v.obj }

// Member busca um membro de struct pelo nome. O segundo retorno indica
// presença, já que um membro ausente e um membro nil são coisas distintas.
func (v Value) Member(name string) (Value, bool) {
	member, ok := v.obj[name]
	return member, ok
}

// Number converte valores numéricos para float64. Valores não numéricos
// (incluindo nil, que o Odoo usa para campos vazios) contribuem com zero.
func (v Value) Number() float64 {
	switch v.kind {
	case KindInt:
		return float64(v.i)
	case KindDouble:
		return v.f
	default:
		return 0
	}
}
