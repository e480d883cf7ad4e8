package credit

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wb-dev/mayoreo-api/internal/domain"
)

// tolerance margen numérico de la validación al guardar (equivalente a 1e-6).
var tolerance = decimal.New(1, -6)

// Split calcula la división crédito/débito de una orden.
// Si no es venta a crédito el crédito efectivo es 0; si lo es, se ajusta al
// rango [0, total]. El débito es siempre total − crédito efectivo.
func Split(total, creditAmount decimal.Decimal, isCreditSale bool) (creditOut, debitOut decimal.Decimal) {
	creditOut = decimal.Zero
	if isCreditSale {
		creditOut = creditAmount
		if creditOut.LessThan(decimal.Zero) {
			creditOut = decimal.Zero
		}
		if creditOut.GreaterThan(total) {
			creditOut = total
		}
	}
	return creditOut, total.Sub(creditOut)
}

// Validate reglas de negocio al guardar una venta a crédito. El ajuste de
// Split ya normaliza en la captura; esto es la contingencia dura al persistir.
// Solo aplica cuando isCreditSale es verdadero.
func Validate(isCreditSale bool, creditAmount, total, partnerLimit decimal.Decimal) error {
	if !isCreditSale {
		return nil
	}
	if creditAmount.GreaterThan(total.Add(tolerance)) {
		return domain.NewValidationError("el pago con crédito no puede ser mayor al total de la orden")
	}
	if creditAmount.LessThan(tolerance.Neg()) {
		return domain.NewValidationError("el pago con crédito no puede ser negativo")
	}
	if creditAmount.GreaterThan(partnerLimit) {
		return domain.NewValidationError(
			fmt.Sprintf("el pago con crédito no puede superar el límite del cliente (%s)", partnerLimit.String()))
	}
	return nil
}

// EffectiveLimit límite de crédito vigente: el límite autorizado si el crédito
// está aprobado, 0 en caso contrario. Nunca se persiste, siempre se recalcula.
func EffectiveLimit(approved bool, limit decimal.Decimal) decimal.Decimal {
	if approved {
		return limit
	}
	return decimal.Zero
}

// CanEditLimit indica si el actor puede editar el límite de crédito: requiere
// crédito aprobado y pertenencia al grupo finanzas. Es una bandera para la
// capa de presentación; la protección real de escritura está en las rutas.
func CanEditLimit(approved bool, actor domain.Actor, financeGroup string) bool {
	return approved && actor.HasGroup(financeGroup)
}
