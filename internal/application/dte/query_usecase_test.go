package dte_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appdte "github.com/jhoicas/facturacion-sv/internal/application/dte"
	"github.com/jhoicas/facturacion-sv/internal/application/dto"
	"github.com/jhoicas/facturacion-sv/internal/domain"
	domaindte "github.com/jhoicas/facturacion-sv/internal/domain/dte"
	"github.com/jhoicas/facturacion-sv/internal/domain/entity"
)

func storedDTE(status string) *entity.DTE {
	return &entity.DTE{
		ID:               "dte-1",
		CompanyID:        companyID,
		TipoDTE:          "01",
		NumeroControl:    "DTE-01-0001-001-000000000000001",
		CodigoGeneracion: "A1B2C3D4-0000-4000-8000-000000000001",
		Status:           status,
		TotalPagar:       decimal.RequireFromString("678.00"),
		Documento:        []byte(`{"identificacion":{"tipoDte":"01"}}`),
		FecEmi:           fixedNow,
	}
}

// ── Consultas ─────────────────────────────────────────────────────────────────

func TestQuery_GetIncluyeDocumento(t *testing.T) {
	repo := &dteRepoMock{}
	repo.On("GetByID", mock.Anything, companyID, "dte-1").Return(storedDTE("PENDING"), nil)

	resp, err := appdte.NewQueryUseCase(repo, nil).Get(context.Background(), companyID, "dte-1")
	require.NoError(t, err)
	assert.Equal(t, "Factura", resp.TipoNombre)
	assert.JSONEq(t, `{"identificacion":{"tipoDte":"01"}}`, string(resp.Documento))
}

func TestQuery_GetDeOtraEmpresaNoExiste(t *testing.T) {
	repo := &dteRepoMock{}
	repo.On("GetByID", mock.Anything, "otra", "dte-1").Return(nil, nil)

	_, err := appdte.NewQueryUseCase(repo, nil).Get(context.Background(), "otra", "dte-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuery_JSONDeBorradorEsConflicto(t *testing.T) {
	draft := storedDTE("DRAFT")
	draft.Documento = nil
	repo := &dteRepoMock{}
	repo.On("GetByID", mock.Anything, companyID, "dte-1").Return(draft, nil)

	_, err := appdte.NewQueryUseCase(repo, nil).JSON(context.Background(), companyID, "dte-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestQuery_ListConFiltrosYTotal(t *testing.T) {
	repo := &dteRepoMock{}
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	want := entity.DTEFilter{TipoDTE: "03", Status: "PENDING", From: &from, To: &to}
	repo.On("List", mock.Anything, companyID, want, 20, 0).Return([]*entity.DTE{storedDTE("PENDING")}, nil)
	repo.On("Count", mock.Anything, companyID, want).Return(21, nil)

	resp, err := appdte.NewQueryUseCase(repo, nil).List(context.Background(), companyID, dto.DTEListRequest{
		TipoDTE: "ccf", Status: "pending", From: "2024-03-01", To: "2024-03-31",
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Nil(t, resp.Items[0].Documento, "el listado no incluye el JSON")
	assert.Equal(t, dto.PageResponse{Limit: 20, Offset: 0, Total: 21}, resp.Page)
}

func TestParseFilter_Invalidos(t *testing.T) {
	cases := map[string]dto.DTEListRequest{
		"tipo":   {TipoDTE: "ZZ"},
		"estado": {Status: "ANULADO"},
		"fecha":  {From: "01/03/2024"},
		"rango":  {From: "2024-04-01", To: "2024-03-01"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := appdte.ParseFilter(in)
			assert.True(t, domaindte.IsValidation(err))
		})
	}
}

func TestQuery_StatusInexistente(t *testing.T) {
	repo := &dteRepoMock{}
	repo.On("GetStatus", mock.Anything, companyID, "x").Return(nil, nil)

	_, err := appdte.NewQueryUseCase(repo, nil).Status(context.Background(), companyID, "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── Transmisión ───────────────────────────────────────────────────────────────

func TestRecordTransmission_PendienteAEnviado(t *testing.T) {
	repo := &dteRepoMock{}
	repo.On("GetStatus", mock.Anything, companyID, "dte-1").Return(storedDTE("PENDING"), nil)
	repo.On("UpdateStatus", mock.Anything, mock.MatchedBy(func(d *entity.DTE) bool {
		return d.Status == "SENT" && d.SelloRecibido == "2024ABCDEF"
	}), "PENDING").Return(nil)

	resp, err := appdte.NewQueryUseCase(repo, nil).RecordTransmission(context.Background(), companyID, "dte-1",
		dto.TransmissionRequest{Status: "sent", SelloRecibido: " 2024ABCDEF "})
	require.NoError(t, err)
	assert.Equal(t, "SENT", resp.Status)
	assert.Equal(t, "2024ABCDEF", resp.SelloRecibido)
	repo.AssertExpectations(t)
}

func TestRecordTransmission_PendienteARechazado(t *testing.T) {
	repo := &dteRepoMock{}
	repo.On("GetStatus", mock.Anything, companyID, "dte-1").Return(storedDTE("PENDING"), nil)
	repo.On("UpdateStatus", mock.Anything, mock.Anything, "PENDING").Return(nil)

	resp, err := appdte.NewQueryUseCase(repo, nil).RecordTransmission(context.Background(), companyID, "dte-1",
		dto.TransmissionRequest{Status: "REJECTED", Observaciones: "NIT receptor inválido"})
	require.NoError(t, err)
	assert.Equal(t, "REJECTED", resp.Status)
	assert.Equal(t, "NIT receptor inválido", resp.Observaciones)
}

func TestRecordTransmission_TransicionesNoPermitidas(t *testing.T) {
	for _, from := range []string{"DRAFT", "SENT", "REJECTED"} {
		t.Run(from, func(t *testing.T) {
			repo := &dteRepoMock{}
			repo.On("GetStatus", mock.Anything, companyID, "dte-1").Return(storedDTE(from), nil)

			_, err := appdte.NewQueryUseCase(repo, nil).RecordTransmission(context.Background(), companyID, "dte-1",
				dto.TransmissionRequest{Status: "SENT", SelloRecibido: "S"})
			assert.ErrorIs(t, err, domain.ErrConflict)
			repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestRecordTransmission_DatosObligatorios(t *testing.T) {
	cases := map[string]dto.TransmissionRequest{
		"enviado sin sello":      {Status: "SENT"},
		"rechazado sin motivo":   {Status: "REJECTED"},
		"estado no transmitible": {Status: "PENDING"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			repo := &dteRepoMock{}
			_, err := appdte.NewQueryUseCase(repo, nil).RecordTransmission(context.Background(), companyID, "dte-1", in)
			assert.True(t, domaindte.IsValidation(err))
			repo.AssertNotCalled(t, "GetStatus", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestRecordTransmission_CarreraEntreTransmisiones(t *testing.T) {
	repo := &dteRepoMock{}
	repo.On("GetStatus", mock.Anything, companyID, "dte-1").Return(storedDTE("PENDING"), nil)
	repo.On("UpdateStatus", mock.Anything, mock.Anything, "PENDING").Return(domain.ErrConflict)

	_, err := appdte.NewQueryUseCase(repo, nil).RecordTransmission(context.Background(), companyID, "dte-1",
		dto.TransmissionRequest{Status: "SENT", SelloRecibido: "S"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}
