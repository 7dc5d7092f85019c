package reporting

import "github.com/pkg/errors"

// Erros de validação da requisição de agregação
var (
	ErrCompanyIDRequired = errors.New("Company ID is missing from the request URL")
)
