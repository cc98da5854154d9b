package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion-sv/internal/application/dto"
	"github.com/jhoicas/facturacion-sv/internal/application/usecase"
	"github.com/jhoicas/facturacion-sv/internal/domain"
	"github.com/jhoicas/facturacion-sv/internal/domain/dte"
	"github.com/jhoicas/facturacion-sv/internal/domain/entity"
)

func customerIn(doc string) dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{CounterpartyRequest: dto.CounterpartyRequest{
		DocumentType:   "13",
		DocumentNumber: doc,
		Name:           "María Pérez",
		Department:     "06",
		Municipality:   "14",
	}}
}

// ── Alta ──────────────────────────────────────────────────────────────────────

func TestCreateCustomer_ConDUIValido(t *testing.T) {
	repo := &customerRepoMock{}
	repo.On("GetByCompanyAndDocument", companyID, "04567890-3").Return(nil, nil)
	repo.On("Create", mock.MatchedBy(func(c *entity.Customer) bool {
		return c.CompanyID == companyID && c.ID != ""
	})).Return(nil)

	resp, err := usecase.NewCustomerUseCase(repo).Create(companyID, customerIn("04567890-3"))
	require.NoError(t, err)
	assert.Equal(t, "María Pérez", resp.Name)
	assert.Equal(t, "13", resp.DocumentType)
	repo.AssertExpectations(t)
}

func TestCreateCustomer_DUIConDigitoErroneo(t *testing.T) {
	repo := &customerRepoMock{}

	_, err := usecase.NewCustomerUseCase(repo).Create(companyID, customerIn("04567890-1"))
	assert.True(t, dte.IsValidation(err))
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateCustomer_SinDocumentoNiNIT(t *testing.T) {
	_, err := usecase.NewCustomerUseCase(&customerRepoMock{}).Create(companyID, dto.CreateCustomerRequest{
		CounterpartyRequest: dto.CounterpartyRequest{Name: "Sin documento"},
	})
	assert.True(t, dte.IsValidation(err))
}

func TestCreateCustomer_Duplicado(t *testing.T) {
	repo := &customerRepoMock{}
	repo.On("GetByCompanyAndDocument", companyID, "04567890-3").Return(&entity.Customer{ID: "x"}, nil)

	_, err := usecase.NewCustomerUseCase(repo).Create(companyID, customerIn("04567890-3"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateCustomer_PorNITNormalizado(t *testing.T) {
	repo := &customerRepoMock{}
	repo.On("GetByCompanyAndDocument", companyID, "06140101011010").Return(nil, nil)
	repo.On("Create", mock.Anything).Return(nil)

	resp, err := usecase.NewCustomerUseCase(repo).Create(companyID, dto.CreateCustomerRequest{
		CounterpartyRequest: dto.CounterpartyRequest{Name: "Distribuidora S.A.", NIT: "0614-010101-101-0", NRC: "1000-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "06140101011010", resp.NIT)
	assert.Equal(t, "10001", resp.NRC)
}

// ── Consulta ──────────────────────────────────────────────────────────────────

func TestGetCustomer_DeOtraEmpresa(t *testing.T) {
	repo := &customerRepoMock{}
	repo.On("GetByID", "cli-1").Return(&entity.Customer{ID: "cli-1", CompanyID: "otra"}, nil)

	_, err := usecase.NewCustomerUseCase(repo).GetByID(companyID, "cli-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListCustomers_PaginaPorDefecto(t *testing.T) {
	repo := &customerRepoMock{}
	repo.On("ListByCompany", companyID, 20, 0).Return([]*entity.Customer{{ID: "a", CompanyID: companyID, Name: "A"}}, nil)

	resp, err := usecase.NewCustomerUseCase(repo).List(companyID, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 20, resp.Page.Limit)
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

func TestListUsers_LimiteMaximo(t *testing.T) {
	repo := &userRepoMock{}
	repo.On("ListByCompany", companyID, 100, 0).Return([]*entity.User{{ID: "u1", CompanyID: companyID, Role: entity.RoleAdmin}}, nil)
	repo.On("CountByCompany", companyID).Return(1, nil)

	list, err := usecase.NewUserUseCase(repo).List(context.Background(), companyID, dto.PageRequest{Limit: 500})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "admin", list.Items[0].Role)
	assert.Equal(t, dto.PageResponse{Limit: 100, Offset: 0, Total: 1}, list.Page)
}

func TestGetUser_DeOtraEmpresa(t *testing.T) {
	repo := &userRepoMock{}
	repo.On("GetByID", companyID, "u1").Return(nil, nil)

	_, err := usecase.NewUserUseCase(repo).GetByID(context.Background(), companyID, "u1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
