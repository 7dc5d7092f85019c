package domain

import "time"

// SecretStatus informa se um segredo de configuração está presente, sem
// jamais revelar o valor.
type SecretStatus struct {
	Name        string `json:"name"`
	IsSet       bool   `json:"isSet"`
	Description string `json:"description"`
}

// OdooConnectionStatus é o resultado mais recente da sonda de conectividade
// com o Odoo.
type OdooConnectionStatus struct {
	Enabled       bool       `json:"enabled"`
	Connected     bool       `json:"connected"`
	LastCheckedAt *time.Time `json:"lastCheckedAt,omitempty"`
	Error         string     `json:"error,omitempty"`
}
