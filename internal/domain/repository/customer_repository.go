package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wb-dev/mayoreo-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByCompanyAndTaxID(companyID, taxID string) (*entity.Customer, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error

	// UpdateCredit escribe el perfil de crédito (aprobación y límite) sin tocar
	// el resto de campos del cliente.
	UpdateCredit(id string, approved bool, limit decimal.Decimal, updatedAt time.Time) error
}
