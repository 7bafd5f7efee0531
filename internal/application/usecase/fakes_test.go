package usecase_test

import (
	"context"
	"errors"

	"github.com/tu-usuario/contaflow-api/internal/domain/entity"
	"github.com/tu-usuario/contaflow-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia, para probar los use cases
// sin base de datos.

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
	failOn    string // "" = nunca falla
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[string]*entity.Company)}
}

func (f *fakeCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	if f.failOn == "create" {
		return errors.New("insert company: boom")
	}
	cp := *c
	f.companies[c.ID] = &cp
	return nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCompanyRepo) ListByUser(_ context.Context, _ string) ([]*entity.Company, error) {
	out := make([]*entity.Company, 0, len(f.companies))
	for _, c := range f.companies {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

type fakeRoleRepo struct {
	roles  []entity.UserCompanyRole
	failOn string
}

func (f *fakeRoleRepo) Grant(_ context.Context, r *entity.UserCompanyRole) error {
	if f.failOn == "grant" {
		return errors.New("grant role: boom")
	}
	f.roles = append(f.roles, *r)
	return nil
}

func (f *fakeRoleRepo) ListByUser(_ context.Context, userID string) ([]entity.UserCompanyRole, error) {
	if f.failOn == "list" {
		return nil, errors.New("list roles by user: boom")
	}
	out := make([]entity.UserCompanyRole, 0)
	for _, r := range f.roles {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

// fakeTxRunner simula la frontera transaccional: si el callback falla,
// descarta las escrituras hechas dentro (como haría el rollback real).
type fakeTxRunner struct {
	companyRepo *fakeCompanyRepo
	roleRepo    *fakeRoleRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.CompanyRepository, repository.RoleRepository) error) error {
	companiesBefore := make(map[string]*entity.Company, len(f.companyRepo.companies))
	for k, v := range f.companyRepo.companies {
		companiesBefore[k] = v
	}
	rolesBefore := append([]entity.UserCompanyRole(nil), f.roleRepo.roles...)

	if err := fn(f.companyRepo, f.roleRepo); err != nil {
		f.companyRepo.companies = companiesBefore
		f.roleRepo.roles = rolesBefore
		return err
	}
	return nil
}

type fakeJournalRepo struct {
	entries []*entity.JournalEntry
}

func (f *fakeJournalRepo) CreateEntry(_ context.Context, e *entity.JournalEntry) error {
	cp := *e
	f.entries = append(f.entries, &cp)
	return nil
}

func (f *fakeJournalRepo) GetEntryByID(_ context.Context, id string) (*entity.JournalEntry, error) {
	for _, e := range f.entries {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeJournalRepo) ListByCompany(_ context.Context, companyID string, limit, offset int) ([]*entity.JournalEntry, error) {
	out := make([]*entity.JournalEntry, 0)
	for _, e := range f.entries {
		if e.CompanyID == companyID {
			cp := *e
			out = append(out, &cp)
		}
	}
	if offset > len(out) {
		offset = len(out)
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], nil
}

type fakeReconRepo struct {
	rows []entity.ReconciliationRow
}

func (f *fakeReconRepo) ListControlBalances(_ context.Context, _ string) ([]entity.ReconciliationRow, error) {
	return f.rows, nil
}
