package credit_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcredit "github.com/wb-dev/mayoreo-api/internal/application/credit"
	"github.com/wb-dev/mayoreo-api/internal/application/dto"
	"github.com/wb-dev/mayoreo-api/internal/domain"
	"github.com/wb-dev/mayoreo-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos (solo lo que usa CustomerUseCase)
// ──────────────────────────────────────────────────────────────────────────────

type memCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (r *memCustomerRepo) Create(c *entity.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCustomerRepo) GetByCompanyAndTaxID(companyID, taxID string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.CompanyID == companyID && c.TaxID == taxID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCustomerRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.customers {
		if c.CompanyID == companyID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memCustomerRepo) Update(c *entity.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *memCustomerRepo) UpdateCredit(id string, approved bool, limit decimal.Decimal, updatedAt time.Time) error {
	c := r.customers[id]
	c.CreditApproved = approved
	c.CreditLimit = limit
	c.UpdatedAt = updatedAt
	return nil
}

type memCompanyRepo struct {
	companies map[string]*entity.Company
}

func (r *memCompanyRepo) Create(c *entity.Company) error {
	cp := *c
	r.companies[c.ID] = &cp
	return nil
}

func (r *memCompanyRepo) GetByID(id string) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range r.companies {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

const (
	tCompanyID  = "co-0001"
	tCustomerID = "cust-0001"
)

func newUseCase() (*appcredit.CustomerUseCase, *memCustomerRepo) {
	customers := &memCustomerRepo{customers: make(map[string]*entity.Customer)}
	companies := &memCompanyRepo{companies: make(map[string]*entity.Company)}
	_ = companies.Create(&entity.Company{ID: tCompanyID, Name: "WB Mayorista", CurrencyCode: "MXN"})
	_ = customers.Create(&entity.Customer{
		ID: tCustomerID, CompanyID: tCompanyID,
		Name: "Abarrotes El Centro", TaxID: "XAXX010101000",
	})
	return appcredit.NewCustomerUseCase(customers, companies), customers
}

func finanzasActor() domain.Actor {
	return domain.Actor{UserID: "u-fin", CompanyID: tCompanyID, Groups: []string{entity.GroupFinanzas}}
}

func ventasActor() domain.Actor {
	return domain.Actor{UserID: "u-ventas", CompanyID: tCompanyID, Groups: []string{entity.GroupVentasComercial}}
}

func boolPtr(b bool) *bool                      { return &b }
func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

// ──────────────────────────────────────────────────────────────────────────────
// Invariante del límite vigente: 0 mientras no esté aprobado, en cualquier
// orden de mutaciones.
// ──────────────────────────────────────────────────────────────────────────────

func TestCreditProfile_LimiteSinAprobar_VigenteCero(t *testing.T) {
	uc, _ := newUseCase()

	// Fijar límite sin aprobar: la escritura pasa, pero el vigente sigue en 0.
	profile, err := uc.UpdateCredit(finanzasActor(), tCustomerID, dto.UpdateCreditRequest{
		CreditLimit: decPtr(decimal.NewFromInt(80_000)),
	})
	require.NoError(t, err, "la mutación es plana, nunca se rechaza")

	assert.False(t, profile.CreditApproved)
	assert.True(t, profile.CreditLimit.Equal(decimal.NewFromInt(80_000)),
		"el límite crudo se conserva")
	assert.True(t, profile.EffectiveLimit.IsZero(),
		"sin aprobación el límite vigente es 0")
}

func TestCreditProfile_AprobarActivaLimiteGuardado(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.UpdateCredit(finanzasActor(), tCustomerID, dto.UpdateCreditRequest{
		CreditLimit: decPtr(decimal.NewFromInt(80_000)),
	})
	require.NoError(t, err)

	profile, err := uc.UpdateCredit(finanzasActor(), tCustomerID, dto.UpdateCreditRequest{
		CreditApproved: boolPtr(true),
	})
	require.NoError(t, err)

	assert.True(t, profile.EffectiveLimit.Equal(decimal.NewFromInt(80_000)),
		"aprobar activa el límite previamente guardado")
}

func TestCreditProfile_RevocarAprobacion_VigenteVuelveACero(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.UpdateCredit(finanzasActor(), tCustomerID, dto.UpdateCreditRequest{
		CreditApproved: boolPtr(true),
		CreditLimit:    decPtr(decimal.NewFromInt(30_000)),
	})
	require.NoError(t, err)

	profile, err := uc.UpdateCredit(finanzasActor(), tCustomerID, dto.UpdateCreditRequest{
		CreditApproved: boolPtr(false),
	})
	require.NoError(t, err)

	assert.True(t, profile.EffectiveLimit.IsZero(),
		"revocar la aprobación congela el límite de nuevo en 0")
	assert.True(t, profile.CreditLimit.Equal(decimal.NewFromInt(30_000)),
		"el límite crudo no se pierde al revocar")
}

// ──────────────────────────────────────────────────────────────────────────────
// can_edit_credit_limit: aprobado y el actor en finanzas
// ──────────────────────────────────────────────────────────────────────────────

func TestCreditProfile_EdicionSoloFinanzasConAprobacion(t *testing.T) {
	uc, _ := newUseCase()

	// Sin aprobar: nadie puede editar el límite.
	profile, err := uc.GetCreditProfile(finanzasActor(), tCustomerID)
	require.NoError(t, err)
	assert.False(t, profile.CanEditLimit, "sin aprobación ni finanzas edita")

	_, err = uc.UpdateCredit(finanzasActor(), tCustomerID, dto.UpdateCreditRequest{
		CreditApproved: boolPtr(true),
	})
	require.NoError(t, err)

	profile, err = uc.GetCreditProfile(finanzasActor(), tCustomerID)
	require.NoError(t, err)
	assert.True(t, profile.CanEditLimit, "aprobado + finanzas = editable")

	profile, err = uc.GetCreditProfile(ventasActor(), tCustomerID)
	require.NoError(t, err)
	assert.False(t, profile.CanEditLimit, "ventas nunca edita el límite")
}

func TestCreditProfile_MonedaDeLaCompania(t *testing.T) {
	uc, _ := newUseCase()

	profile, err := uc.GetCreditProfile(finanzasActor(), tCustomerID)
	require.NoError(t, err)
	assert.Equal(t, "MXN", profile.CreditCurrency,
		"la moneda del límite es la de la compañía")
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedad de la empresa
// ──────────────────────────────────────────────────────────────────────────────

func TestCreditProfile_OtraEmpresa_Prohibido(t *testing.T) {
	uc, _ := newUseCase()

	intruso := domain.Actor{UserID: "x", CompanyID: "otra-empresa", Groups: []string{entity.GroupFinanzas}}
	_, err := uc.GetCreditProfile(intruso, tCustomerID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreditProfile_ClienteInexistente_NoEncontrado(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.GetCreditProfile(finanzasActor(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateCustomer_TaxIDDuplicado(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Create(finanzasActor(), dto.CreateCustomerRequest{
		Name: "Otro Cliente", TaxID: "XAXX010101000",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"no puede haber dos clientes con el mismo NIT en la empresa")
}
