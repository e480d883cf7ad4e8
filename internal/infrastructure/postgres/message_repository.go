package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/wb-dev/mayoreo-api/internal/domain/entity"
	"github.com/wb-dev/mayoreo-api/internal/domain/repository"
)

var (
	_ repository.MessageRepository  = (*MessageRepo)(nil)
	_ repository.FollowerRepository = (*FollowerRepo)(nil)
)

// MessageRepo implementación de MessageRepository (chatter de órdenes).
type MessageRepo struct {
	q Querier
}

// NewMessageRepository construye el adaptador.
func NewMessageRepository(q Querier) *MessageRepo {
	return &MessageRepo{q: q}
}

// Create persiste un mensaje en el historial de la orden.
func (r *MessageRepo) Create(message *entity.Message) error {
	query := `
		INSERT INTO order_messages (id, order_id, body, author_id, type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		message.ID, message.OrderID, message.Body, message.AuthorID, message.Type, message.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

// ListByOrder lista los mensajes de la orden en orden cronológico.
func (r *MessageRepo) ListByOrder(orderID string) ([]*entity.Message, error) {
	query := `
		SELECT id, order_id, body, author_id, type, created_at
		FROM order_messages WHERE order_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()
	var list []*entity.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMessage(row pgx.Row) (*entity.Message, error) {
	var m entity.Message
	err := row.Scan(&m.ID, &m.OrderID, &m.Body, &m.AuthorID, &m.Type, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FollowerRepo implementación de FollowerRepository.
type FollowerRepo struct {
	q Querier
}

// NewFollowerRepository construye el adaptador.
func NewFollowerRepository(q Querier) *FollowerRepo {
	return &FollowerRepo{q: q}
}

// Subscribe agrega seguidores a la orden; los ya suscritos se ignoran.
func (r *FollowerRepo) Subscribe(orderID string, userIDs []string) error {
	ctx := context.Background()
	query := `
		INSERT INTO order_followers (order_id, user_id)
		VALUES ($1, $2) ON CONFLICT DO NOTHING`
	for _, userID := range userIDs {
		if _, err := r.q.Exec(ctx, query, orderID, userID); err != nil {
			return fmt.Errorf("subscribe follower %s: %w", userID, err)
		}
	}
	return nil
}

// ListByOrder lista los IDs de usuario suscritos a la orden.
func (r *FollowerRepo) ListByOrder(orderID string) ([]string, error) {
	query := `SELECT user_id FROM order_followers WHERE order_id = $1`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list followers: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan follower: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
