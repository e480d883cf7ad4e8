package entity

import "time"

// SalesTeam representa un equipo (canal) de ventas. Las órdenes al mayoreo se
// asignan forzosamente al equipo configurado, ej. "Team_Mayoreo".
type SalesTeam struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
