package usecase_test

import (
	"context"

	"github.com/tu-usuario/crm-eventos/internal/domain"
	"github.com/tu-usuario/crm-eventos/internal/domain/entity"
	"github.com/tu-usuario/crm-eventos/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func newFakeClientRepo(clients ...*entity.Client) *fakeClientRepo {
	r := &fakeClientRepo{clients: make(map[string]*entity.Client)}
	for _, c := range clients {
		r.clients[c.ID] = c
	}
	return r
}

func (r *fakeClientRepo) Create(c *entity.Client) error { r.clients[c.ID] = c; return nil }

func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) Update(c *entity.Client) error {
	if _, ok := r.clients[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) List() ([]*entity.Client, error) {
	out := make([]*entity.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeClientRepo) ListByCommercial(commercialID string) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.clients {
		if c.CommercialContactID == commercialID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeContractRepo struct {
	contracts map[string]*entity.Contract
}

func newFakeContractRepo(contracts ...*entity.Contract) *fakeContractRepo {
	r := &fakeContractRepo{contracts: make(map[string]*entity.Contract)}
	for _, c := range contracts {
		r.contracts[c.ID] = c
	}
	return r
}

func (r *fakeContractRepo) Create(c *entity.Contract) error { r.contracts[c.ID] = c; return nil }

func (r *fakeContractRepo) GetByID(id string) (*entity.Contract, error) {
	c, ok := r.contracts[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeContractRepo) Update(c *entity.Contract) error {
	if _, ok := r.contracts[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.contracts[c.ID] = &cp
	return nil
}

func (r *fakeContractRepo) List() ([]*entity.Contract, error) {
	out := make([]*entity.Contract, 0, len(r.contracts))
	for _, c := range r.contracts {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeContractRepo) ListUnsigned() ([]*entity.Contract, error) {
	var out []*entity.Contract
	for _, c := range r.contracts {
		if !c.IsSigned {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeContractRepo) ListUnpaid() ([]*entity.Contract, error) {
	var out []*entity.Contract
	for _, c := range r.contracts {
		if c.RemainingAmount.IsPositive() {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeEventRepo struct {
	events map[string]*entity.Event
}

func newFakeEventRepo(events ...*entity.Event) *fakeEventRepo {
	r := &fakeEventRepo{events: make(map[string]*entity.Event)}
	for _, e := range events {
		r.events[e.ID] = e
	}
	return r
}

// Create reproduce el UNIQUE de events.contract_id del storage real.
func (r *fakeEventRepo) Create(e *entity.Event) error {
	for _, existing := range r.events {
		if existing.ContractID == e.ContractID {
			return domain.ErrEventAlreadyExists
		}
	}
	r.events[e.ID] = e
	return nil
}

func (r *fakeEventRepo) GetByID(id string) (*entity.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEventRepo) GetByContractID(contractID string) (*entity.Event, error) {
	for _, e := range r.events {
		if e.ContractID == contractID {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeEventRepo) Update(e *entity.Event) error {
	if _, ok := r.events[e.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *fakeEventRepo) List() ([]*entity.Event, error) {
	out := make([]*entity.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEventRepo) ListBySupport(supportID string) ([]*entity.Event, error) {
	var out []*entity.Event
	for _, e := range r.events {
		if e.SupportContactID != nil && *e.SupportContactID == supportID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) ListUnassigned() ([]*entity.Event, error) {
	var out []*entity.Event
	for _, e := range r.events {
		if e.SupportContactID == nil {
			out = append(out, e)
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes; los tests no
// necesitan transaccionalidad real, solo el mismo contrato.
type fakeTxRunner struct {
	contracts *fakeContractRepo
	events    *fakeEventRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	contractRepo repository.ContractRepository,
	eventRepo repository.EventRepository,
) error) error {
	return fn(r.contracts, r.events)
}

// recordingAudit captura los nombres de eventos de auditoría emitidos.
type recordingAudit struct {
	events []string
	errors []error
}

func (r *recordingAudit) RecordEvent(name string, _ map[string]interface{}) {
	r.events = append(r.events, name)
}
func (r *recordingAudit) RecordError(err error, _ map[string]interface{}) {
	r.errors = append(r.errors, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Identidades de prueba
// ──────────────────────────────────────────────────────────────────────────────

func gestionUser() *entity.User {
	return &entity.User{ID: "gestion-1", Email: "gestion@crm.test", FullName: "Gestión Uno", Role: entity.RoleGestion}
}

func commercialUser() *entity.User {
	return &entity.User{ID: "commercial-1", Email: "comercial@crm.test", FullName: "Comercial Uno", Role: entity.RoleCommercial}
}

func supportUser() *entity.User {
	return &entity.User{ID: "support-1", Email: "soporte@crm.test", FullName: "Soporte Uno", Role: entity.RoleSupport}
}
