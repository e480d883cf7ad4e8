package repository

import "github.com/wb-dev/mayoreo-api/internal/domain/entity"

// MessageRepository define el puerto de persistencia para el chatter de órdenes.
type MessageRepository interface {
	Create(message *entity.Message) error
	ListByOrder(orderID string) ([]*entity.Message, error)
}

// FollowerRepository define el puerto para suscriptores de una orden.
type FollowerRepository interface {
	// Subscribe agrega los usuarios como seguidores; ignora duplicados.
	Subscribe(orderID string, userIDs []string) error
	ListByOrder(orderID string) ([]string, error)
}
