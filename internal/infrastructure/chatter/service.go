// Package chatter implementa el historial de mensajes y seguidores de una
// orden sobre los repositorios de persistencia.
package chatter

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-dev/mayoreo-api/internal/application/wholesale"
	"github.com/wb-dev/mayoreo-api/internal/domain/entity"
	"github.com/wb-dev/mayoreo-api/internal/domain/repository"
	"github.com/wb-dev/mayoreo-api/pkg/logger"
)

var _ wholesale.Chatter = (*Service)(nil)

// Service implementa el puerto Chatter de la capa de aplicación.
type Service struct {
	messages  repository.MessageRepository
	followers repository.FollowerRepository
	log       *logger.Logger
}

// NewService construye el servicio de chatter.
func NewService(messages repository.MessageRepository, followers repository.FollowerRepository, log *logger.Logger) *Service {
	return &Service{messages: messages, followers: followers, log: log}
}

// PostNote publica una nota en el historial. authorID vacío = nota del sistema.
func (s *Service) PostNote(orderID, body, authorID, messageType string) error {
	msg := &entity.Message{
		ID:        uuid.New().String(),
		OrderID:   orderID,
		Body:      body,
		Type:      messageType,
		CreatedAt: time.Now(),
	}
	if authorID != "" {
		msg.AuthorID = &authorID
	}
	if err := s.messages.Create(msg); err != nil {
		return fmt.Errorf("publicar nota: %w", err)
	}
	s.log.Debug().
		Str("order_id", orderID).
		Str("type", messageType).
		Msg("nota publicada en el chatter")
	return nil
}

// Subscribe agrega usuarios como seguidores de la orden; ignora duplicados.
func (s *Service) Subscribe(orderID string, userIDs []string) error {
	if len(userIDs) == 0 {
		return nil
	}
	if err := s.followers.Subscribe(orderID, userIDs); err != nil {
		return fmt.Errorf("suscribir seguidores: %w", err)
	}
	s.log.Debug().
		Str("order_id", orderID).
		Int("count", len(userIDs)).
		Msg("seguidores suscritos a la orden")
	return nil
}
