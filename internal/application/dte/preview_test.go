package dte_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appdte "github.com/jhoicas/facturacion-sv/internal/application/dte"
	"github.com/jhoicas/facturacion-sv/internal/application/dto"
	domaindte "github.com/jhoicas/facturacion-sv/internal/domain/dte"
)

// ── Vista previa ──────────────────────────────────────────────────────────────

func TestPreview_FacturaSinPersistencia(t *testing.T) {
	cfg := domaindte.Config{Ambiente: "00", CodEstable: "0001", CodPuntoVenta: "001", Location: elSalvador}

	doc, err := appdte.Preview(cfg, appdte.PreviewInput{
		Tipo:     "FE",
		Profile:  emisor().FiscalProfile(),
		Prior:    42,
		IssuedAt: fixedNow,
		Request: dto.IssueDTERequest{
			Items: items(`[{"descripcion":"Soporte técnico","cantidad":2,"precio":100}]`),
		},
	})
	require.NoError(t, err)

	factura, ok := doc.(*domaindte.FacturaDocument)
	require.True(t, ok)
	assert.Equal(t, "DTE-01-0001-001-000000000000043", factura.Identificacion.NumeroControl)
	assert.Equal(t, "2024-03-14", factura.Identificacion.FecEmi)
	assert.Equal(t, "226.00", factura.Resumen.TotalPagar.Decimal().StringFixed(2))
}

func TestPreview_PerfilIncompleto(t *testing.T) {
	profile := emisor().FiscalProfile()
	profile.NRC = ""

	_, err := appdte.Preview(domaindte.Config{}, appdte.PreviewInput{
		Tipo:    "01",
		Profile: profile,
		Request: dto.IssueDTERequest{Items: items(`[{"descripcion":"x","cantidad":1,"precio":"1"}]`)},
	})
	assert.ErrorIs(t, err, domaindte.ErrIncompleteProfile)
}

func TestPreview_TipoDesconocido(t *testing.T) {
	_, err := appdte.Preview(domaindte.Config{}, appdte.PreviewInput{Tipo: "ZZ"})
	assert.True(t, domaindte.IsValidation(err))
}
