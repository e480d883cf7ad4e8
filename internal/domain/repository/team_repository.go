package repository

import "github.com/wb-dev/mayoreo-api/internal/domain/entity"

// TeamRepository define el puerto de persistencia para equipos de venta.
type TeamRepository interface {
	GetByID(id string) (*entity.SalesTeam, error)
	FindByName(companyID, name string) (*entity.SalesTeam, error)
}
