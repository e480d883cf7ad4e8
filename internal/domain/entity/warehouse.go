package entity

import "time"

// Warehouse representa una bodega o sucursal desde la que se despacha.
type Warehouse struct {
	ID        string
	CompanyID string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
