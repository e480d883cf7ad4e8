package repository

import (
	"time"

	"github.com/wb-dev/mayoreo-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para SalesOrder.
type OrderRepository interface {
	Create(order *entity.SalesOrder) error
	GetByID(id string) (*entity.SalesOrder, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.SalesOrder, error)
	Update(order *entity.SalesOrder) error

	// ListStaleWholesalePending órdenes de mayoreo pendientes de pago,
	// confirmadas o bloqueadas, cuya fecha de confirmación es anterior a cutoff.
	// Es la selección del barrido de cancelación automática: excluye de forma
	// natural las ya canceladas (su estado financiero se limpia al cancelar).
	ListStaleWholesalePending(cutoff time.Time) ([]*entity.SalesOrder, error)

	// ListWholesalePendingByIDs filtra ids a las órdenes de mayoreo pendientes
	// de pago en estado sale/done (selección del barrido de recordatorios).
	ListWholesalePendingByIDs(ids []string) ([]*entity.SalesOrder, error)
}
