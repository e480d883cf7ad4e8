package entity

import "time"

// ActivityTypeTodo tipo de actividad "por hacer" (revisión financiera).
const ActivityTypeTodo = "todo"

// Activity representa una tarea programada sobre una orden de venta.
// La actividad de revisión financiera sirve a la vez de cola de trabajo y de
// disparador para los barridos de recordatorio.
type Activity struct {
	ID        string
	OrderID   string
	Type      string // por ahora solo "todo"
	Summary   string
	Note      string
	UserID    string // asignado
	DueDate   time.Time
	Done      bool
	DoneAt    *time.Time
	CreatedAt time.Time
}
