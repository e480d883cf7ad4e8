package repository

import "github.com/wb-dev/mayoreo-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User, incluida la
// resolución de pertenencia a grupos de permisos.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	GetByEmailAndCompany(email, companyID string) (*entity.User, error)

	// ListByGroup enumera los usuarios que pertenecen al grupo dado.
	ListByGroup(group string) ([]*entity.User, error)
}
