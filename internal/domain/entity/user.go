package entity

import "time"

// Grupos de permisos de la aplicación. Los botones del flujo financiero y la
// edición del límite de crédito se autorizan por pertenencia a grupo.
const (
	GroupAdmin           = "admin"
	GroupFinanzas        = "finanzas"
	GroupVentasMayoreo   = "ventas_mayoreo"
	GroupVentasComercial = "ventas_comercial"
)

// ValidGroups grupos aceptados en registro.
var ValidGroups = []string{GroupAdmin, GroupFinanzas, GroupVentasMayoreo, GroupVentasComercial}

// User representa un usuario del sistema (pertenece a una Company).
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string   // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Groups       []string // pertenencia a grupos de permisos
	Status       string   // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
