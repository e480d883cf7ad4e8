package wholesale

import (
	"fmt"
	"time"

	"github.com/wb-dev/mayoreo-api/internal/domain/entity"
)

// reminderBody nota de recordatorio de pago vencido (autor: vendedor asignado).
const reminderBody = "El pago de esta orden de venta al mayoreo está vencido. Por favor, revísalo y actualiza el estado financiero."

// AutoCancelStaleOrders barrido periódico: cancela las órdenes de mayoreo que
// superaron el plazo configurado (144 horas por defecto) desde su confirmación
// sin confirmación de pago. Devuelve cuántas canceló.
//
// Idempotente entre corridas: la selección exige finance_status = pending y
// estado sale/done, así que las ya canceladas no vuelven a aparecer. El fallo
// de una orden no aborta el lote.
func (uc *UseCase) AutoCancelStaleOrders(now time.Time) (int, error) {
	uc.log.Info().Msg("barrido de cancelación de órdenes iniciado")

	cutoff := now.Add(-time.Duration(uc.cfg.AutoCancelHours) * time.Hour)
	orders, err := uc.orderRepo.ListStaleWholesalePending(cutoff)
	if err != nil {
		return 0, fmt.Errorf("buscar órdenes vencidas: %w", err)
	}
	uc.log.Info().Int("total", len(orders)).Msg("órdenes vencidas encontradas")

	body := fmt.Sprintf(
		"La orden de venta ha sido cancelada automáticamente por superar el plazo de %d horas sin confirmación de pago.",
		uc.cfg.AutoCancelHours)

	cancelled := 0
	for _, order := range orders {
		if err := uc.cancelOrder(order, true); err != nil {
			uc.log.Warn().Err(err).Str("order", order.Name).Msg("no se pudo cancelar; se continúa con el lote")
			continue
		}
		if err := uc.chatter.PostNote(order.ID, body, "", entity.MessageTypeNotification); err != nil {
			uc.log.Warn().Err(err).Str("order", order.Name).Msg("orden cancelada pero sin nota en el chatter")
		}
		uc.log.Info().Str("order", order.Name).Msg("orden cancelada automáticamente")
		cancelled++
	}

	uc.log.Info().Int("cancelled", cancelled).Msg("barrido de cancelación de órdenes finalizado")
	return cancelled, nil
}

// SendPaymentReminders barrido periódico: publica un recordatorio en el
// chatter de cada orden de mayoreo pendiente cuya actividad de revisión ya
// venció. La nota se publica a nombre del vendedor asignado; si la orden no
// tiene vendedor se registra un aviso y se continúa con las demás.
func (uc *UseCase) SendPaymentReminders(now time.Time) (int, error) {
	uc.log.Info().Msg("barrido de recordatorios de pago iniciado")

	overdue, err := uc.activityRepo.ListOverdueTodo(now)
	if err != nil {
		return 0, fmt.Errorf("buscar actividades vencidas: %w", err)
	}
	uc.log.Info().Int("total", len(overdue)).Msg("actividades vencidas encontradas")
	if len(overdue) == 0 {
		return 0, nil
	}

	seen := make(map[string]bool)
	var orderIDs []string
	for _, a := range overdue {
		if !seen[a.OrderID] {
			seen[a.OrderID] = true
			orderIDs = append(orderIDs, a.OrderID)
		}
	}

	orders, err := uc.orderRepo.ListWholesalePendingByIDs(orderIDs)
	if err != nil {
		return 0, fmt.Errorf("buscar órdenes con aviso pendiente: %w", err)
	}
	uc.log.Info().Int("total", len(orders)).Msg("órdenes que necesitan aviso de pago")

	sent := 0
	for _, order := range orders {
		if order.UserID == nil {
			uc.log.Warn().Str("order", order.Name).
				Msg("sin vendedor asignado; no se pudo enviar el aviso")
			continue
		}
		if err := uc.chatter.PostNote(order.ID, reminderBody, *order.UserID, entity.MessageTypeComment); err != nil {
			uc.log.Warn().Err(err).Str("order", order.Name).Msg("no se pudo publicar el aviso; se continúa con el lote")
			continue
		}
		uc.log.Info().Str("order", order.Name).Str("author", *order.UserID).Msg("aviso de pago enviado")
		sent++
	}

	uc.log.Info().Int("sent", sent).Msg("barrido de recordatorios de pago finalizado")
	return sent, nil
}
