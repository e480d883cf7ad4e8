package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest entrada para crear un cliente.
type CreateCustomerRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	TaxID string `json:"tax_id" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID             string          `json:"id"`
	CompanyID      string          `json:"company_id"`
	Name           string          `json:"name"`
	TaxID          string          `json:"tax_id"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	CreditApproved bool            `json:"credit_approved"`
	CreditLimit    decimal.Decimal `json:"credit_limit"`
}

// UpdateCreditRequest entrada para modificar el perfil de crédito de un
// cliente. Campos nil no se tocan.
type UpdateCreditRequest struct {
	CreditApproved *bool            `json:"credit_approved"`
	CreditLimit    *decimal.Decimal `json:"credit_limit"`
}

// CreditProfileResponse perfil de crédito con los campos calculados.
// EffectiveLimit y CanEditLimit nunca se persisten; se recalculan en cada
// lectura a partir de la aprobación, el límite y el actor.
type CreditProfileResponse struct {
	CustomerID     string          `json:"customer_id"`
	CreditApproved bool            `json:"credit_approved"`
	CreditCurrency string          `json:"credit_currency"` // moneda de la compañía, solo lectura
	CreditLimit    decimal.Decimal `json:"credit_limit"`
	EffectiveLimit decimal.Decimal `json:"credit_limit_effective"`
	CanEditLimit   bool            `json:"can_edit_credit_limit"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
