package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest entrada para crear una orden de venta (cotización).
type CreateOrderRequest struct {
	CustomerID   string           `json:"customer_id" validate:"required,uuid"`
	UserID       string           `json:"user_id"` // vendedor asignado (opcional)
	TeamID       string           `json:"team_id"`
	WarehouseID  string           `json:"warehouse_id"`
	AmountTotal  decimal.Decimal  `json:"amount_total" validate:"required"`
	IsWholesale  bool             `json:"is_wholesale"`
	IsCreditSale bool             `json:"is_credit_sale"`
	CreditAmount *decimal.Decimal `json:"credit_amount"`
	CarrierName  string           `json:"carrier_name"`
}

// UpdateOrderRequest entrada para editar una orden. Campos nil no se tocan.
// Marcar IsWholesale en true fuerza el equipo de mayoreo aunque TeamID venga
// en la misma escritura; desmarcarlo no resetea el flujo financiero.
type UpdateOrderRequest struct {
	UserID       *string          `json:"user_id"`
	TeamID       *string          `json:"team_id"`
	WarehouseID  *string          `json:"warehouse_id"`
	IsWholesale  *bool            `json:"is_wholesale"`
	IsCreditSale *bool            `json:"is_credit_sale"`
	CreditAmount *decimal.Decimal `json:"credit_amount"`
	CarrierName  *string          `json:"carrier_name"`
}

// OrderResponse salida de una orden con los campos calculados del flujo de
// mayoreo y de la división crédito/débito.
type OrderResponse struct {
	ID           string          `json:"id"`
	CompanyID    string          `json:"company_id"`
	Name         string          `json:"name"`
	CustomerID   string          `json:"customer_id"`
	UserID       *string         `json:"user_id"`
	TeamID       *string         `json:"team_id"`
	WarehouseID  *string         `json:"warehouse_id"`
	CurrencyCode string          `json:"currency_code"`
	State        string          `json:"state"`
	AmountTotal  decimal.Decimal `json:"amount_total"`

	IsWholesale        bool       `json:"is_wholesale"`
	WholesaleDisplay   string     `json:"wholesale_display,omitempty"`
	FinanceStatus      string     `json:"finance_status,omitempty"`
	FinanceStatusLabel string     `json:"finance_status_label,omitempty"`
	ConfirmedAt        *time.Time `json:"confirmed_at,omitempty"`

	IsCreditSale       bool            `json:"is_credit_sale"`
	CreditAmount       decimal.Decimal `json:"credit_amount"`
	DebitAmount        decimal.Decimal `json:"debit_amount"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	PartnerCreditLimit decimal.Decimal `json:"partner_credit_limit_amount"`

	CarrierName          string     `json:"carrier_name,omitempty"`
	CarrierTrackingRef   string     `json:"carrier_tracking_ref,omitempty"`
	TotalCarrierTracking int        `json:"total_carrier_tracking,omitempty"`
	DeliveryStatus       string     `json:"delivery_status"`
	EffectiveDate        *time.Time `json:"effective_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WholesaleDefaultsResponse sugerencias al marcar una orden como mayoreo:
// equipo y bodega propuestos. Es asistencia de UI, no se impone al guardar.
type WholesaleDefaultsResponse struct {
	TeamID        *string `json:"team_id"`
	TeamName      string  `json:"team_name,omitempty"`
	WarehouseID   *string `json:"warehouse_id"`
	WarehouseName string  `json:"warehouse_name,omitempty"`
}
