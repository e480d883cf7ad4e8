package wholesale_test

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wb-dev/mayoreo-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia y del chatter.
// Guardan copias para que las mutaciones del caso de uso solo sean visibles
// tras Update, igual que con una base de datos real.
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders map[string]*entity.SalesOrder
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.SalesOrder)}
}

func (r *fakeOrderRepo) Create(order *entity.SalesOrder) error {
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.SalesOrder, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.SalesOrder, error) {
	var out []*entity.SalesOrder
	for _, o := range r.orders {
		if o.CompanyID == companyID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) Update(order *entity.SalesOrder) error {
	if _, ok := r.orders[order.ID]; !ok {
		return errors.New("orden no existe")
	}
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) ListStaleWholesalePending(cutoff time.Time) ([]*entity.SalesOrder, error) {
	var out []*entity.SalesOrder
	for _, o := range r.orders {
		if o.IsWholesale && o.FinanceStatus == "pending" &&
			(o.State == entity.OrderStateSale || o.State == entity.OrderStateDone) &&
			o.ConfirmedAt != nil && o.ConfirmedAt.Before(cutoff) {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListWholesalePendingByIDs(ids []string) ([]*entity.SalesOrder, error) {
	var out []*entity.SalesOrder
	for _, id := range ids {
		o, ok := r.orders[id]
		if !ok {
			continue
		}
		if o.IsWholesale && o.FinanceStatus == "pending" &&
			(o.State == entity.OrderStateSale || o.State == entity.OrderStateDone) {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]*entity.Customer)}
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) GetByCompanyAndTaxID(companyID, taxID string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.CompanyID == companyID && c.TaxID == taxID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.customers {
		if c.CompanyID == companyID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) UpdateCredit(id string, approved bool, limit decimal.Decimal, updatedAt time.Time) error {
	c, ok := r.customers[id]
	if !ok {
		return errors.New("cliente no existe")
	}
	c.CreditApproved = approved
	c.CreditLimit = limit
	c.UpdatedAt = updatedAt
	return nil
}

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[string]*entity.Company)}
}

func (r *fakeCompanyRepo) Create(c *entity.Company) error {
	cp := *c
	r.companies[c.ID] = &cp
	return nil
}

func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range r.companies {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

type fakeActivityRepo struct {
	activities map[string]*entity.Activity
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{activities: make(map[string]*entity.Activity)}
}

func (r *fakeActivityRepo) Create(a *entity.Activity) error {
	cp := *a
	r.activities[a.ID] = &cp
	return nil
}

func (r *fakeActivityRepo) ListOpenTodoByOrder(orderID string) ([]*entity.Activity, error) {
	var out []*entity.Activity
	for _, a := range r.activities {
		if a.OrderID == orderID && a.Type == entity.ActivityTypeTodo && !a.Done {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeActivityRepo) MarkDone(ids []string, doneAt time.Time) error {
	for _, id := range ids {
		if a, ok := r.activities[id]; ok {
			a.Done = true
			at := doneAt
			a.DoneAt = &at
		}
	}
	return nil
}

func (r *fakeActivityRepo) ListOverdueTodo(now time.Time) ([]*entity.Activity, error) {
	var out []*entity.Activity
	for _, a := range r.activities {
		if a.Type == entity.ActivityTypeTodo && !a.Done && a.DueDate.Before(now) {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users    map[string]*entity.User
	groupErr error // fuerza fallo de ListByGroup para el escenario de abandono
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmailAndCompany(email, companyID string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.CompanyID == companyID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ListByGroup(group string) ([]*entity.User, error) {
	if r.groupErr != nil {
		return nil, r.groupErr
	}
	var out []*entity.User
	for _, u := range r.users {
		for _, g := range u.Groups {
			if g == group {
				cp := *u
				out = append(out, &cp)
				break
			}
		}
	}
	return out, nil
}

type fakeTeamRepo struct {
	teams map[string]*entity.SalesTeam
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: make(map[string]*entity.SalesTeam)}
}

func (r *fakeTeamRepo) GetByID(id string) (*entity.SalesTeam, error) {
	t, ok := r.teams[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTeamRepo) FindByName(companyID, name string) (*entity.SalesTeam, error) {
	for _, t := range r.teams {
		if t.CompanyID == companyID && t.Name == name {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func newFakeWarehouseRepo() *fakeWarehouseRepo {
	return &fakeWarehouseRepo{warehouses: make(map[string]*entity.Warehouse)}
}

func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	w, ok := r.warehouses[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *fakeWarehouseRepo) FindByName(companyID, name string) (*entity.Warehouse, error) {
	for _, w := range r.warehouses {
		if w.CompanyID == companyID && w.Name == name {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeWarehouseRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.warehouses {
		if w.CompanyID == companyID {
			cp := *w
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeChatter registra notas y suscripciones para las aserciones.
type fakeChatter struct {
	notes       []fakeNote
	subscribers map[string][]string
}

type fakeNote struct {
	OrderID  string
	Body     string
	AuthorID string
	Type     string
}

func newFakeChatter() *fakeChatter {
	return &fakeChatter{subscribers: make(map[string][]string)}
}

func (f *fakeChatter) PostNote(orderID, body, authorID, messageType string) error {
	f.notes = append(f.notes, fakeNote{OrderID: orderID, Body: body, AuthorID: authorID, Type: messageType})
	return nil
}

func (f *fakeChatter) Subscribe(orderID string, userIDs []string) error {
	f.subscribers[orderID] = append(f.subscribers[orderID], userIDs...)
	return nil
}

func (f *fakeChatter) notesFor(orderID string) []fakeNote {
	var out []fakeNote
	for _, n := range f.notes {
		if n.OrderID == orderID {
			out = append(out, n)
		}
	}
	return out
}
