package tenancy

import "fmt"

// UnmappedCompanyError indica que o identificador de empresa não tem id
// interno do Odoo configurado. É a falha operacional mais comum desse tipo
// de sistema, então a mensagem nomeia o identificador que falta.
type UnmappedCompanyError struct {
	CompanyID string
}

func (e *UnmappedCompanyError) Error() string {
	return fmt.Sprintf("No Odoo ID mapping found for company: %s", e.CompanyID)
}

// Resolver traduz o identificador externo de empresa para o id interno do
// Odoo que escopa as consultas.
type Resolver interface {
	Resolve(companyID string) (int, error)
}

// StaticResolver resolve sobre a tabela estática injetada pela configuração
// de implantação. A tabela é imutável durante a vida do processo.
type StaticResolver struct {
	mapping map[string]int
}

func NewResolver(mapping map[string]int) Resolver {
	return &StaticResolver{mapping: mapping}
}

// Resolve falha fechado: identificador sem entrada é erro, nunca um escopo
// padrão. O teste é presença no mapa, não truthiness — zero é um id Odoo
// legal.
func (r *StaticResolver) Resolve(companyID string) (int, error) {
	odooID, ok := r.mapping[companyID]
	if !ok {
		return 0, &UnmappedCompanyError{CompanyID: companyID}
	}

	return odooID, nil
}
