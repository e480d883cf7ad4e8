package credit

import (
	"time"

	"github.com/google/uuid"
	"github.com/wb-dev/mayoreo-api/internal/application/dto"
	"github.com/wb-dev/mayoreo-api/internal/domain"
	domcredit "github.com/wb-dev/mayoreo-api/internal/domain/credit"
	"github.com/wb-dev/mayoreo-api/internal/domain/entity"
	"github.com/wb-dev/mayoreo-api/internal/domain/repository"
)

// CustomerUseCase casos de uso de clientes y su perfil de crédito.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
	companyRepo  repository.CompanyRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customerRepo repository.CustomerRepository, companyRepo repository.CompanyRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo, companyRepo: companyRepo}
}

// Create crea un nuevo cliente. El perfil de crédito nace sin aprobar y con
// límite 0.
func (uc *CustomerUseCase) Create(actor domain.Actor, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.TaxID == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.customerRepo.GetByCompanyAndTaxID(actor.CompanyID, in.TaxID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		CompanyID: actor.CompanyID,
		Name:      in.Name,
		TaxID:     in.TaxID,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes de la empresa.
func (uc *CustomerUseCase) List(actor domain.Actor, limit, offset int) ([]*dto.CustomerResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.customerRepo.ListByCompany(actor.CompanyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// GetByID obtiene un cliente de la empresa del actor.
func (uc *CustomerUseCase) GetByID(actor domain.Actor, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.getOwned(actor, id)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetCreditProfile devuelve el perfil de crédito con los campos calculados:
// límite vigente (0 si no está aprobado) y bandera de edición para el actor.
func (uc *CustomerUseCase) GetCreditProfile(actor domain.Actor, id string) (*dto.CreditProfileResponse, error) {
	customer, err := uc.getOwned(actor, id)
	if err != nil {
		return nil, err
	}
	return uc.toCreditProfile(actor, customer), nil
}

// UpdateCredit modifica la aprobación y/o el límite de crédito. Mutaciones
// planas: este componente nunca rechaza la entrada; quién puede llamarlo es
// decisión de control de acceso de la capa de rutas.
func (uc *CustomerUseCase) UpdateCredit(actor domain.Actor, id string, in dto.UpdateCreditRequest) (*dto.CreditProfileResponse, error) {
	customer, err := uc.getOwned(actor, id)
	if err != nil {
		return nil, err
	}
	if in.CreditApproved != nil {
		customer.CreditApproved = *in.CreditApproved
	}
	if in.CreditLimit != nil {
		customer.CreditLimit = *in.CreditLimit
	}
	customer.UpdatedAt = time.Now()
	if err := uc.customerRepo.UpdateCredit(customer.ID, customer.CreditApproved, customer.CreditLimit, customer.UpdatedAt); err != nil {
		return nil, err
	}
	return uc.toCreditProfile(actor, customer), nil
}

func (uc *CustomerUseCase) getOwned(actor domain.Actor, id string) (*entity.Customer, error) {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.CompanyID != actor.CompanyID {
		return nil, domain.ErrForbidden
	}
	return customer, nil
}

func (uc *CustomerUseCase) toCreditProfile(actor domain.Actor, c *entity.Customer) *dto.CreditProfileResponse {
	// La moneda del límite es siempre la de la compañía (solo lectura aquí).
	currency := ""
	if company, err := uc.companyRepo.GetByID(c.CompanyID); err == nil && company != nil {
		currency = company.CurrencyCode
	}
	return &dto.CreditProfileResponse{
		CustomerID:     c.ID,
		CreditApproved: c.CreditApproved,
		CreditCurrency: currency,
		CreditLimit:    c.CreditLimit,
		EffectiveLimit: domcredit.EffectiveLimit(c.CreditApproved, c.CreditLimit),
		CanEditLimit:   domcredit.CanEditLimit(c.CreditApproved, actor, entity.GroupFinanzas),
		UpdatedAt:      c.UpdatedAt,
	}
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:             c.ID,
		CompanyID:      c.CompanyID,
		Name:           c.Name,
		TaxID:          c.TaxID,
		Email:          c.Email,
		Phone:          c.Phone,
		CreditApproved: c.CreditApproved,
		CreditLimit:    c.CreditLimit,
	}
}
