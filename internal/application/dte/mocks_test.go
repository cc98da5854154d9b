package dte_test

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

func (m *companyRepoMock) GetByNIT(string) (*entity.Company, error) { return nil, nil }

func (m *companyRepoMock) UpdateProfile(c *entity.Company) error { return m.Called(c).Error(0) }

func (m *companyRepoMock) IsActive(context.Context, string) (bool, error) { return true, nil }

type customerRepoMock struct {
	mock.Mock
}

func (m *customerRepoMock) Create(*entity.Customer) error { return nil }

func (m *customerRepoMock) GetByID(id string) (*entity.Customer, error) {
	args := m.Called(id)
	if c := args.Get(0); c != nil {
		return c.(*entity.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *customerRepoMock) GetByCompanyAndDocument(string, string) (*entity.Customer, error) {
	return nil, nil
}

func (m *customerRepoMock) ListByCompany(string, int, int) ([]*entity.Customer, error) {
	return nil, nil
}

type establishmentRepoMock struct {
	mock.Mock
}

func (m *establishmentRepoMock) Create(context.Context, *entity.Establishment) error { return nil }

func (m *establishmentRepoMock) GetActive(ctx context.Context, companyID string) (*entity.Establishment, error) {
	args := m.Called(ctx, companyID)
	if e := args.Get(0); e != nil {
		return e.(*entity.Establishment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *establishmentRepoMock) ListByCompany(context.Context, string) ([]*entity.Establishment, error) {
	return nil, nil
}

type sequenceRepoMock struct {
	mock.Mock
}

func (m *sequenceRepoMock) Next(ctx context.Context, companyID, tipoDTE string) (int64, error) {
	args := m.Called(ctx, companyID, tipoDTE)
	return args.Get(0).(int64), args.Error(1)
}

type dteRepoMock struct {
	mock.Mock
}

func (m *dteRepoMock) Create(ctx context.Context, d *entity.DTE) error {
	return m.Called(ctx, d).Error(0)
}

func (m *dteRepoMock) GetByID(ctx context.Context, companyID, id string) (*entity.DTE, error) {
	args := m.Called(ctx, companyID, id)
	if d := args.Get(0); d != nil {
		return d.(*entity.DTE), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *dteRepoMock) List(ctx context.Context, companyID string, f entity.DTEFilter, limit, offset int) ([]*entity.DTE, error) {
	args := m.Called(ctx, companyID, f, limit, offset)
	if l := args.Get(0); l != nil {
		return l.([]*entity.DTE), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *dteRepoMock) Count(ctx context.Context, companyID string, f entity.DTEFilter) (int, error) {
	args := m.Called(ctx, companyID, f)
	return args.Int(0), args.Error(1)
}

func (m *dteRepoMock) GetStatus(ctx context.Context, companyID, id string) (*entity.DTE, error) {
	args := m.Called(ctx, companyID, id)
	if d := args.Get(0); d != nil {
		return d.(*entity.DTE), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *dteRepoMock) UpdateStatus(ctx context.Context, d *entity.DTE, from string) error {
	return m.Called(ctx, d, from).Error(0)
}

// txRunnerFake ejecuta el callback con los mocks, sin transacción real.
type txRunnerFake struct {
	seq  *sequenceRepoMock
	dtes *dteRepoMock
	runs int
}

func (f *txRunnerFake) RunIssue(_ context.Context, fn func(repository.SequenceRepository, repository.DTERepository) error) error {
	f.runs++
	return fn(f.seq, f.dtes)
}

type metricsMock struct {
	mock.Mock
}

func (m *metricsMock) Issued(tipoDTE string) { m.Called(tipoDTE) }
func (m *metricsMock) SequenceConflict()     { m.Called() }
