package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/wb-dev/mayoreo-api/internal/domain/entity"
	"github.com/wb-dev/mayoreo-api/internal/domain/repository"
)

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

// ActivityRepo implementación de ActivityRepository (usable con pool o tx).
type ActivityRepo struct {
	q Querier
}

// NewActivityRepository construye el adaptador.
func NewActivityRepository(q Querier) *ActivityRepo {
	return &ActivityRepo{q: q}
}

const activityColumns = `
	id, order_id, type, summary, note, user_id, due_date, done, done_at, created_at`

func scanActivity(row pgx.Row) (*entity.Activity, error) {
	var a entity.Activity
	err := row.Scan(
		&a.ID, &a.OrderID, &a.Type, &a.Summary, &a.Note, &a.UserID,
		&a.DueDate, &a.Done, &a.DoneAt, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create persiste una nueva actividad.
func (r *ActivityRepo) Create(activity *entity.Activity) error {
	query := `
		INSERT INTO order_activities (id, order_id, type, summary, note, user_id, due_date, done, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, $8)`
	_, err := r.q.Exec(context.Background(), query,
		activity.ID, activity.OrderID, activity.Type, activity.Summary, activity.Note,
		activity.UserID, activity.DueDate, activity.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// ListOpenTodoByOrder actividades "todo" no completadas de una orden.
func (r *ActivityRepo) ListOpenTodoByOrder(orderID string) ([]*entity.Activity, error) {
	query := `SELECT` + activityColumns + `
		FROM order_activities
		WHERE order_id = $1 AND type = $2 AND done = FALSE
		ORDER BY due_date`
	rows, err := r.q.Query(context.Background(), query, orderID, entity.ActivityTypeTodo)
	if err != nil {
		return nil, fmt.Errorf("list open activities: %w", err)
	}
	defer rows.Close()
	return collectActivities(rows)
}

// MarkDone marca el conjunto de actividades como hechas.
func (r *ActivityRepo) MarkDone(ids []string, doneAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE order_activities SET done = TRUE, done_at = $2 WHERE id = ANY($1)`
	_, err := r.q.Exec(context.Background(), query, ids, doneAt)
	if err != nil {
		return fmt.Errorf("mark activities done: %w", err)
	}
	return nil
}

// ListOverdueTodo actividades "todo" abiertas cuya fecha límite ya pasó.
func (r *ActivityRepo) ListOverdueTodo(now time.Time) ([]*entity.Activity, error) {
	query := `SELECT` + activityColumns + `
		FROM order_activities
		WHERE type = $1 AND done = FALSE AND due_date < $2
		ORDER BY due_date`
	rows, err := r.q.Query(context.Background(), query, entity.ActivityTypeTodo, now)
	if err != nil {
		return nil, fmt.Errorf("list overdue activities: %w", err)
	}
	defer rows.Close()
	return collectActivities(rows)
}

func collectActivities(rows pgx.Rows) ([]*entity.Activity, error) {
	var list []*entity.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
