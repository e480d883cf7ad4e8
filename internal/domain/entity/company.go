package entity

import "time"

// Company representa una empresa (tenant). CurrencyCode es la moneda en la que
// se expresan los límites de crédito de sus clientes.
type Company struct {
	ID           string
	Name         string
	TaxID        string
	CurrencyCode string // ej. MXN, COP
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
