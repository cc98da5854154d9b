package dte_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appdte "github.com/jhoicas/facturacion-sv/internal/application/dte"
	"github.com/jhoicas/facturacion-sv/internal/application/dto"
	"github.com/jhoicas/facturacion-sv/internal/domain"
	domaindte "github.com/jhoicas/facturacion-sv/internal/domain/dte"
	"github.com/jhoicas/facturacion-sv/internal/domain/entity"
)

const companyID = "11111111-1111-1111-1111-111111111111"

var (
	elSalvador = time.FixedZone("CST", -6*3600)
	fixedNow   = time.Date(2024, 3, 15, 2, 30, 0, 0, time.UTC)
)

type issueFixture struct {
	companies *companyRepoMock
	customers *customerRepoMock
	ests      *establishmentRepoMock
	seq       *sequenceRepoMock
	dtes      *dteRepoMock
	tx        *txRunnerFake
	metrics   *metricsMock
	uc        *appdte.IssueUseCase
}

func newIssueFixture(t *testing.T) *issueFixture {
	t.Helper()
	f := &issueFixture{
		companies: &companyRepoMock{},
		customers: &customerRepoMock{},
		ests:      &establishmentRepoMock{},
		seq:       &sequenceRepoMock{},
		dtes:      &dteRepoMock{},
		metrics:   &metricsMock{},
	}
	f.tx = &txRunnerFake{seq: f.seq, dtes: f.dtes}
	cfg := domaindte.Config{Ambiente: "00", CodEstable: "0001", CodPuntoVenta: "001", Location: elSalvador}
	f.uc = appdte.NewIssueUseCase(f.tx, f.companies, f.customers, f.ests, cfg, f.metrics, nil).
		WithClock(func() time.Time { return fixedNow })
	return f
}

func emisor() *entity.Company {
	return &entity.Company{
		ID:           companyID,
		Name:         "Servicios Técnicos S.A. de C.V.",
		NIT:          "06141501901012",
		NRC:          "1234567",
		ActivityCode: "62010",
		Department:   "06",
		Municipality: "14",
		Status:       entity.CompanyActive,
	}
}

func items(raw string) json.RawMessage { return json.RawMessage(raw) }

// ── Emisión ───────────────────────────────────────────────────────────────────

func TestIssue_FacturaPendienteConCorrelativo(t *testing.T) {
	f := newIssueFixture(t)
	f.companies.On("GetByID", companyID).Return(emisor(), nil)
	f.ests.On("GetActive", mock.Anything, companyID).Return(nil, nil)
	f.seq.On("Next", mock.Anything, companyID, "01").Return(int64(41), nil)

	var saved *entity.DTE
	f.dtes.On("Create", mock.Anything, mock.AnythingOfType("*entity.DTE")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*entity.DTE) }).
		Return(nil)
	f.metrics.On("Issued", "01").Return()

	resp, err := f.uc.Issue(context.Background(), companyID, "user-1", "FE", dto.IssueDTERequest{
		Items: items(`[{"descripcion":"Servicio de consultoría","cantidad":8,"precio":75}]`),
	})
	require.NoError(t, err)

	assert.Equal(t, "01", resp.TipoDTE)
	assert.Equal(t, "DTE-01-0001-001-000000000000042", resp.NumeroControl)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, "678.00", resp.TotalPagar.StringFixed(2))
	assert.Equal(t, "78.00", resp.TotalIVA.StringFixed(2))
	assert.Len(t, resp.CodigoGeneracion, 36)

	require.NotNil(t, saved)
	assert.Equal(t, companyID, saved.CompanyID)
	assert.Equal(t, "user-1", saved.CreatedBy)
	assert.Equal(t, fixedNow, saved.FecEmi)
	doc := string(saved.Documento)
	assert.Contains(t, doc, `"numeroControl":"DTE-01-0001-001-000000000000042"`)
	assert.Contains(t, doc, `"totalPagar":678.00`)
	assert.Contains(t, doc, `"fecEmi":"2024-03-14"`)
	assert.Equal(t, 1, f.tx.runs)
	f.metrics.AssertExpectations(t)
}

func TestIssue_PerfilIncompleto(t *testing.T) {
	f := newIssueFixture(t)
	company := emisor()
	company.NRC = ""
	f.companies.On("GetByID", companyID).Return(company, nil)

	_, err := f.uc.Issue(context.Background(), companyID, "user-1", "01", dto.IssueDTERequest{
		Items: items(`[{"descripcion":"X","cantidad":1,"precio":1}]`),
	})
	assert.ErrorIs(t, err, domain.ErrIncompleteProfile)
	assert.Equal(t, 0, f.tx.runs, "no se reserva correlativo sin perfil")
}

func TestIssue_EmpresaInexistente(t *testing.T) {
	f := newIssueFixture(t)
	f.companies.On("GetByID", companyID).Return(nil, nil)

	_, err := f.uc.Issue(context.Background(), companyID, "user-1", "01", dto.IssueDTERequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIssue_ItemsInvalidos(t *testing.T) {
	cases := map[string]string{
		"vacío":         `[]`,
		"no es arreglo": `{"descripcion":"X"}`,
		"sin payload":   ``,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			f := newIssueFixture(t)
			f.companies.On("GetByID", companyID).Return(emisor(), nil)

			_, err := f.uc.Issue(context.Background(), companyID, "user-1", "01", dto.IssueDTERequest{Items: items(raw)})
			require.Error(t, err)
			assert.True(t, domaindte.IsValidation(err))
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, 0, f.tx.runs)
		})
	}
}

func TestIssue_TipoDesconocido(t *testing.T) {
	f := newIssueFixture(t)
	_, err := f.uc.Issue(context.Background(), companyID, "user-1", "99", dto.IssueDTERequest{})
	assert.True(t, domaindte.IsValidation(err))
	f.companies.AssertNotCalled(t, "GetByID", mock.Anything)
}

// ── Contraparte y establecimiento ─────────────────────────────────────────────

func TestIssue_CreditoFiscalConClienteYEstablecimientoActivo(t *testing.T) {
	f := newIssueFixture(t)
	f.companies.On("GetByID", companyID).Return(emisor(), nil)
	f.customers.On("GetByID", "cust-1").Return(&entity.Customer{
		ID:           "cust-1",
		CompanyID:    companyID,
		Name:         "Cliente Ejemplo S.A.",
		NIT:          "06140101011010",
		NRC:          "1000011",
		ActivityCode: "46900",
	}, nil)
	f.ests.On("GetActive", mock.Anything, companyID).Return(&entity.Establishment{
		CodEstable: "0002", CodPuntoVenta: "P01", IsActive: true,
	}, nil)
	f.seq.On("Next", mock.Anything, companyID, "03").Return(int64(0), nil)

	var saved *entity.DTE
	f.dtes.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*entity.DTE) }).
		Return(nil)
	f.metrics.On("Issued", "03").Return()

	resp, err := f.uc.Issue(context.Background(), companyID, "user-1", "03", dto.IssueDTERequest{
		CustomerID: "cust-1",
		Items:      items(`[{"descripcion":"Papel","cantidad":1,"precio":10.05}]`),
	})
	require.NoError(t, err)
	assert.Equal(t, "DTE-03-0002-P01-000000000000001", resp.NumeroControl)
	assert.Equal(t, "11.36", resp.TotalPagar.StringFixed(2))
	assert.Equal(t, "cust-1", saved.CustomerID)
	assert.Equal(t, "06140101011010", saved.ReceptorDocumento)
	assert.Equal(t, "Cliente Ejemplo S.A.", saved.ReceptorNombre)
}

func TestIssue_ClienteDeOtraEmpresa(t *testing.T) {
	f := newIssueFixture(t)
	f.companies.On("GetByID", companyID).Return(emisor(), nil)
	f.customers.On("GetByID", "cust-2").Return(&entity.Customer{ID: "cust-2", CompanyID: "otra"}, nil)

	_, err := f.uc.Issue(context.Background(), companyID, "user-1", "03", dto.IssueDTERequest{
		CustomerID: "cust-2",
		Items:      items(`[{"descripcion":"X","cantidad":1,"precio":1}]`),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestIssue_CreditoFiscalSinNRCDelReceptor(t *testing.T) {
	f := newIssueFixture(t)
	f.companies.On("GetByID", companyID).Return(emisor(), nil)
	f.ests.On("GetActive", mock.Anything, companyID).Return(nil, nil)
	f.seq.On("Next", mock.Anything, companyID, "03").Return(int64(0), nil)

	_, err := f.uc.Issue(context.Background(), companyID, "user-1", "CCF", dto.IssueDTERequest{
		Receptor: &dto.CounterpartyRequest{Name: "Cliente", NIT: "06140101011010", ActivityCode: "46900"},
		Items:    items(`[{"descripcion":"X","cantidad":1,"precio":1}]`),
	})
	assert.True(t, domaindte.IsValidation(err))
	f.dtes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestIssue_NotaCreditoFechaRelacionadaInvalida(t *testing.T) {
	f := newIssueFixture(t)
	f.companies.On("GetByID", companyID).Return(emisor(), nil)

	_, err := f.uc.Issue(context.Background(), companyID, "user-1", "05", dto.IssueDTERequest{
		Receptor: &dto.CounterpartyRequest{Name: "Cliente", NIT: "06140101011010", NRC: "1000011", ActivityCode: "46900"},
		Items:    items(`[{"descripcion":"Devolución","cantidad":1,"precio":5}]`),
		Related:  []dto.RelatedDocumentRequest{{TipoDTE: "03", Number: "DTE-03-0001-001-000000000000001", IssuedAt: "15/03/2024"}},
	})
	require.Error(t, err)
	var ve *domaindte.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "documentoRelacionado", ve.Field)
}

// ── Reintentos por colisión ───────────────────────────────────────────────────

func TestIssue_ReintentaTrasColision(t *testing.T) {
	f := newIssueFixture(t)
	f.companies.On("GetByID", companyID).Return(emisor(), nil)
	f.ests.On("GetActive", mock.Anything, companyID).Return(nil, nil)
	f.seq.On("Next", mock.Anything, companyID, "01").Return(int64(0), nil)
	f.dtes.On("Create", mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: dtes_codigo_generacion_key", domain.ErrConflict)).Once()
	f.dtes.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	f.metrics.On("SequenceConflict").Return().Once()
	f.metrics.On("Issued", "01").Return().Once()

	resp, err := f.uc.Issue(context.Background(), companyID, "user-1", "01", dto.IssueDTERequest{
		Items: items(`[{"descripcion":"X","cantidad":1,"precio":1}]`),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, 2, f.tx.runs)
	f.metrics.AssertExpectations(t)
}

func TestIssue_ColisionPersistenteAgotaReintentos(t *testing.T) {
	f := newIssueFixture(t)
	f.companies.On("GetByID", companyID).Return(emisor(), nil)
	f.ests.On("GetActive", mock.Anything, companyID).Return(nil, nil)
	f.seq.On("Next", mock.Anything, companyID, "01").Return(int64(0), nil)
	f.dtes.On("Create", mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: dtes_company_numero_control_key", domain.ErrConflict))
	f.metrics.On("SequenceConflict").Return()

	_, err := f.uc.Issue(context.Background(), companyID, "user-1", "01", dto.IssueDTERequest{
		Items: items(`[{"descripcion":"X","cantidad":1,"precio":1}]`),
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 3, f.tx.runs)
	f.metrics.AssertNumberOfCalls(t, "SequenceConflict", 3)
	f.metrics.AssertNotCalled(t, "Issued", mock.Anything)
}
