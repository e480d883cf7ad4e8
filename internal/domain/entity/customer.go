package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa un cliente de la empresa, incluido su perfil de crédito.
// El límite de crédito siempre está en la moneda de la compañía; la moneda no
// se guarda aquí, se deriva de Company.CurrencyCode.
type Customer struct {
	ID             string
	CompanyID      string
	Name           string
	TaxID          string // NIT o Cédula
	Email          string
	Phone          string
	CreditApproved bool            // crédito autorizado por finanzas
	CreditLimit    decimal.Decimal // monto máximo autorizado; editable solo si CreditApproved
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
