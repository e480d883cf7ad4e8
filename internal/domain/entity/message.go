package entity

import "time"

// Tipos de mensaje en el chatter de una orden.
const (
	MessageTypeComment      = "comment"      // comentario con autor visible
	MessageTypeNotification = "notification" // nota generada por el sistema
)

// Message representa una nota en el historial (chatter) de una orden.
type Message struct {
	ID        string
	OrderID   string
	Body      string
	AuthorID  *string // nil cuando el autor es el sistema
	Type      string
	CreatedAt time.Time
}
