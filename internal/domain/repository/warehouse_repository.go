package repository

import "github.com/wb-dev/mayoreo-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse.
type WarehouseRepository interface {
	GetByID(id string) (*entity.Warehouse, error)
	FindByName(companyID, name string) (*entity.Warehouse, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Warehouse, error)
}
