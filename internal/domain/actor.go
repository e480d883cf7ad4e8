package domain

// Actor contexto explícito del usuario que ejecuta una operación.
// Reemplaza cualquier estado ambiente: todos los casos de uso lo reciben
// como parámetro y deciden permisos con HasGroup.
type Actor struct {
	UserID    string
	CompanyID string
	Groups    []string
}

// HasGroup indica si el actor pertenece al grupo dado.
func (a Actor) HasGroup(group string) bool {
	for _, g := range a.Groups {
		if g == group {
			return true
		}
	}
	return false
}

// HasAnyGroup indica si el actor pertenece a alguno de los grupos dados.
func (a Actor) HasAnyGroup(groups ...string) bool {
	for _, g := range groups {
		if a.HasGroup(g) {
			return true
		}
	}
	return false
}
