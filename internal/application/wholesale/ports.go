package wholesale

// Chatter puerto de mensajería: publicar notas en el historial de una orden y
// suscribir seguidores para notificaciones.
type Chatter interface {
	// PostNote publica una nota. authorID vacío = nota del sistema.
	// messageType es entity.MessageTypeComment o entity.MessageTypeNotification.
	PostNote(orderID, body, authorID, messageType string) error

	// Subscribe agrega usuarios como seguidores de la orden (ignora duplicados).
	Subscribe(orderID string, userIDs []string) error
}

// Config parámetros del flujo de mayoreo que usan los casos de uso.
// Espeja config.WholesaleConfig sin acoplar la capa de aplicación a viper.
type Config struct {
	ReviewDueHours  int    // plazo de la actividad de revisión (horas desde la confirmación)
	AutoCancelHours int    // horas sin pago antes de la cancelación automática
	TeamName        string // equipo forzado en órdenes de mayoreo
	WarehouseName   string // bodega sugerida
}
