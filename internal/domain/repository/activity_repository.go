package repository

import (
	"time"

	"github.com/wb-dev/mayoreo-api/internal/domain/entity"
)

// ActivityRepository define el puerto de persistencia para actividades
// programadas sobre órdenes (tareas de revisión financiera).
type ActivityRepository interface {
	Create(activity *entity.Activity) error

	// ListOpenTodoByOrder actividades "todo" no completadas de una orden.
	ListOpenTodoByOrder(orderID string) ([]*entity.Activity, error)

	// MarkDone marca el conjunto de actividades como hechas.
	MarkDone(ids []string, doneAt time.Time) error

	// ListOverdueTodo actividades "todo" abiertas cuya fecha límite ya pasó.
	ListOverdueTodo(now time.Time) ([]*entity.Activity, error)
}
