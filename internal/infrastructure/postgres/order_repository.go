package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/wb-dev/mayoreo-api/internal/domain"
	"github.com/wb-dev/mayoreo-api/internal/domain/entity"
	"github.com/wb-dev/mayoreo-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `
	id, company_id, name, customer_id, user_id, team_id, warehouse_id,
	currency_code, state, amount_total, is_wholesale,
	COALESCE(finance_status, ''), confirmed_at,
	is_credit_sale, credit_amount,
	COALESCE(carrier_name, ''), COALESCE(carrier_tracking_ref, ''),
	total_carrier_tracking, delivery_status, effective_date,
	created_at, updated_at`

func scanOrder(row pgx.Row) (*entity.SalesOrder, error) {
	var o entity.SalesOrder
	err := row.Scan(
		&o.ID, &o.CompanyID, &o.Name, &o.CustomerID, &o.UserID, &o.TeamID, &o.WarehouseID,
		&o.CurrencyCode, &o.State, &o.AmountTotal, &o.IsWholesale,
		&o.FinanceStatus, &o.ConfirmedAt,
		&o.IsCreditSale, &o.CreditAmount,
		&o.CarrierName, &o.CarrierTrackingRef,
		&o.TotalCarrierTracking, &o.DeliveryStatus, &o.EffectiveDate,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create persiste una nueva orden de venta.
func (r *OrderRepo) Create(order *entity.SalesOrder) error {
	query := `
		INSERT INTO sale_orders (
			id, company_id, name, customer_id, user_id, team_id, warehouse_id,
			currency_code, state, amount_total, is_wholesale, finance_status, confirmed_at,
			is_credit_sale, credit_amount, carrier_name, carrier_tracking_ref,
			total_carrier_tracking, delivery_status, effective_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CompanyID, order.Name, order.CustomerID, order.UserID, order.TeamID, order.WarehouseID,
		order.CurrencyCode, order.State, order.AmountTotal, order.IsWholesale,
		nullIfEmpty(order.FinanceStatus), order.ConfirmedAt,
		order.IsCreditSale, order.CreditAmount,
		nullIfEmpty(order.CarrierName), nullIfEmpty(order.CarrierTrackingRef),
		order.TotalCarrierTracking, order.DeliveryStatus, order.EffectiveDate,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale_order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *OrderRepo) GetByID(id string) (*entity.SalesOrder, error) {
	query := `SELECT` + orderColumns + ` FROM sale_orders WHERE id = $1`
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale_order: %w", err)
	}
	return o, nil
}

// ListByCompany lista órdenes de la empresa con paginación.
func (r *OrderRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.SalesOrder, error) {
	query := `SELECT` + orderColumns + `
		FROM sale_orders WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sale_orders: %w", err)
	}
	defer rows.Close()
	return collectOrders(rows)
}

// Update actualiza una orden (todos los campos mutables).
func (r *OrderRepo) Update(order *entity.SalesOrder) error {
	query := `
		UPDATE sale_orders SET
			user_id = $2, team_id = $3, warehouse_id = $4, state = $5, amount_total = $6,
			is_wholesale = $7, finance_status = $8, confirmed_at = $9,
			is_credit_sale = $10, credit_amount = $11,
			carrier_name = $12, carrier_tracking_ref = $13, total_carrier_tracking = $14,
			delivery_status = $15, effective_date = $16, updated_at = $17
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.UserID, order.TeamID, order.WarehouseID, order.State, order.AmountTotal,
		order.IsWholesale, nullIfEmpty(order.FinanceStatus), order.ConfirmedAt,
		order.IsCreditSale, order.CreditAmount,
		nullIfEmpty(order.CarrierName), nullIfEmpty(order.CarrierTrackingRef), order.TotalCarrierTracking,
		order.DeliveryStatus, order.EffectiveDate, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale_order: %w", err)
	}
	return nil
}

// ListStaleWholesalePending selección del barrido de cancelación automática:
// mayoreo, pendiente de pago, confirmada o bloqueada, confirmada antes de cutoff.
func (r *OrderRepo) ListStaleWholesalePending(cutoff time.Time) ([]*entity.SalesOrder, error) {
	query := `SELECT` + orderColumns + `
		FROM sale_orders
		WHERE is_wholesale = TRUE
		  AND finance_status = 'pending'
		  AND state IN ('sale', 'done')
		  AND confirmed_at < $1
		ORDER BY confirmed_at`
	rows, err := r.q.Query(context.Background(), query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list stale wholesale orders: %w", err)
	}
	defer rows.Close()
	return collectOrders(rows)
}

// ListWholesalePendingByIDs filtra ids a las órdenes de mayoreo pendientes en
// estado sale/done (selección del barrido de recordatorios).
func (r *OrderRepo) ListWholesalePendingByIDs(ids []string) ([]*entity.SalesOrder, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT` + orderColumns + `
		FROM sale_orders
		WHERE id = ANY($1)
		  AND is_wholesale = TRUE
		  AND finance_status = 'pending'
		  AND state IN ('sale', 'done')
		ORDER BY confirmed_at`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("list wholesale pending by ids: %w", err)
	}
	defer rows.Close()
	return collectOrders(rows)
}

func collectOrders(rows pgx.Rows) ([]*entity.SalesOrder, error) {
	var list []*entity.SalesOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale_order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}
