package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/facturacion-sv/internal/domain/entity"
	"github.com/jhoicas/facturacion-sv/internal/domain/repository"
)

// -- Mocks --

type companyRepoMock struct {
	mock.Mock
}

func (m *companyRepoMock) Create(c *entity.Company) error { return m.Called(c).Error(0) }

func (m *companyRepoMock) GetByID(id string) (*entity.Company, error) {
	args := m.Called(id)
	if c := args.Get(0); c != nil {
		return c.(*entity.Company), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *companyRepoMock) GetByNIT(nit string) (*entity.Company, error) {
	args := m.Called(nit)
	if c := args.Get(0); c != nil {
		return c.(*entity.Company), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *companyRepoMock) UpdateProfile(c *entity.Company) error { return m.Called(c).Error(0) }

func (m *companyRepoMock) IsActive(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type customerRepoMock struct {
	mock.Mock
}

func (m *customerRepoMock) Create(c *entity.Customer) error { return m.Called(c).Error(0) }

func (m *customerRepoMock) GetByID(id string) (*entity.Customer, error) {
	args := m.Called(id)
	if c := args.Get(0); c != nil {
		return c.(*entity.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *customerRepoMock) GetByCompanyAndDocument(companyID, document string) (*entity.Customer, error) {
	args := m.Called(companyID, document)
	if c := args.Get(0); c != nil {
		return c.(*entity.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *customerRepoMock) ListByCompany(companyID string, limit, offset int) ([]*entity.Customer, error) {
	args := m.Called(companyID, limit, offset)
	if l := args.Get(0); l != nil {
		return l.([]*entity.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

type establishmentRepoMock struct {
	mock.Mock
}

func (m *establishmentRepoMock) Create(ctx context.Context, e *entity.Establishment) error {
	return m.Called(ctx, e).Error(0)
}

func (m *establishmentRepoMock) GetActive(ctx context.Context, companyID string) (*entity.Establishment, error) {
	args := m.Called(ctx, companyID)
	if e := args.Get(0); e != nil {
		return e.(*entity.Establishment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *establishmentRepoMock) ListByCompany(ctx context.Context, companyID string) ([]*entity.Establishment, error) {
	args := m.Called(ctx, companyID)
	if l := args.Get(0); l != nil {
		return l.([]*entity.Establishment), args.Error(1)
	}
	return nil, args.Error(1)
}

// establishmentTxFake ejecuta el callback con el mock, sin transacción real.
type establishmentTxFake struct {
	repo *establishmentRepoMock
	runs int
}

func (f *establishmentTxFake) RunEstablishment(_ context.Context, fn func(repository.EstablishmentRepository) error) error {
	f.runs++
	return fn(f.repo)
}

type userRepoMock struct {
	mock.Mock
}

func (m *userRepoMock) Create(_ context.Context, u *entity.User) error { return m.Called(u).Error(0) }

func (m *userRepoMock) GetByID(_ context.Context, companyID, id string) (*entity.User, error) {
	args := m.Called(companyID, id)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *userRepoMock) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	args := m.Called(email)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *userRepoMock) ListByCompany(_ context.Context, companyID string, limit, offset int) ([]*entity.User, error) {
	args := m.Called(companyID, limit, offset)
	if l := args.Get(0); l != nil {
		return l.([]*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *userRepoMock) CountByCompany(_ context.Context, companyID string) (int, error) {
	args := m.Called(companyID)
	return args.Int(0), args.Error(1)
}
