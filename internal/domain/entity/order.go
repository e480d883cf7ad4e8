package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de la orden de venta.
const (
	OrderStateDraft  = "draft"  // cotización
	OrderStateSale   = "sale"   // orden confirmada
	OrderStateDone   = "done"   // bloqueada
	OrderStateCancel = "cancel" // cancelada
)

// Estados de despacho de bodega.
const (
	DeliveryStatusPending    = "pending"
	DeliveryStatusDispatched = "dispatched"
)

// CarrierPickup nombre del transportista cuando el cliente recoge en tienda.
const CarrierPickup = "Pick up"

// SalesOrder representa una orden de venta con su extensión de mayoreo:
// estado de aprobación financiera, fecha de confirmación y división del pago
// entre crédito y débito.
type SalesOrder struct {
	ID           string
	CompanyID    string
	Name         string // consecutivo legible, ej. SO-3F2A91B4
	CustomerID   string
	UserID       *string // vendedor asignado; puede no haber
	TeamID       *string
	WarehouseID  *string
	CurrencyCode string
	State        string
	AmountTotal  decimal.Decimal

	// Extensión de mayoreo
	IsWholesale   bool
	FinanceStatus string     // estados de wholesale.Status*; "" = sin flujo iniciado
	ConfirmedAt   *time.Time // se estampa una sola vez al confirmar una orden de mayoreo

	// División crédito/débito
	IsCreditSale bool
	CreditAmount decimal.Decimal // monto que el cliente desea cubrir con crédito

	// Logística
	CarrierName          string
	CarrierTrackingRef   string
	TotalCarrierTracking int
	DeliveryStatus       string
	EffectiveDate        *time.Time // fecha efectiva de entrega; nil si no se ha despachado

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WholesaleDisplay etiqueta visible cuando la orden es de mayoreo ("" si no lo es).
func (o *SalesOrder) WholesaleDisplay() string {
	if o.IsWholesale {
		return "VENTA AL MAYOREO"
	}
	return ""
}

// IsDispatched indica si la orden ya salió de bodega: tiene fecha efectiva
// o el estado de despacho es "dispatched".
func (o *SalesOrder) IsDispatched() bool {
	return o.EffectiveDate != nil || o.DeliveryStatus == DeliveryStatusDispatched
}
