package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domaindte "github.com/jhoicas/facturacion-sv/internal/domain/dte"
)

// ── schema ────────────────────────────────────────────────────────────────────

func TestDocumentSchema_MontosComoNumero(t *testing.T) {
	s := documentSchema(domaindte.Factura)
	assert.Contains(t, s.Title, "(01)")

	resumen, ok := s.Properties.Get("resumen")
	require.True(t, ok)
	total, ok := resumen.Properties.Get("totalPagar")
	require.True(t, ok)
	assert.Equal(t, "number", total.Type)

	_, ok = s.Properties.Get("identificacion")
	assert.True(t, ok)
}

// ── preview ───────────────────────────────────────────────────────────────────

const previewInput = `{
  "tipo": "ccf",
  "perfil": {
    "name": "Servicios Técnicos S.A. de C.V.",
    "nit": "0614-150190-101-2",
    "nrc": "123456-7",
    "activity_code": "62010",
    "department": "06",
    "municipality": "14"
  },
  "documento": {
    "receptor": {"nombre": "Distribuidora Central", "nit": "06140101011010", "nrc": "1000011",
                 "cod_actividad": "10711", "departamento": "06", "municipio": "14", "complemento": "Col. Escalón"},
    "items": [{"descripcion": "Mantenimiento", "cantidad": 1, "precio": 100}]
  }
}`

func TestRunPreview_ImprimeDocumento(t *testing.T) {
	cfg := domaindte.Config{Ambiente: "00", CodEstable: "0001", CodPuntoVenta: "001", Location: time.UTC}
	var out bytes.Buffer

	require.NoError(t, runPreview(strings.NewReader(previewInput), &out, cfg, 9))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	ident := doc["identificacion"].(map[string]any)
	assert.Equal(t, "03", ident["tipoDte"])
	assert.Equal(t, "DTE-03-0001-001-000000000000010", ident["numeroControl"])
	emisor := doc["emisor"].(map[string]any)
	assert.Equal(t, "06141501901012", emisor["nit"])
}

func TestRunPreview_EntradaInvalida(t *testing.T) {
	err := runPreview(strings.NewReader("{"), &bytes.Buffer{}, domaindte.Config{}, 0)
	assert.Error(t, err)
}

// ── catalogs ──────────────────────────────────────────────────────────────────

func TestPrintCatalogs(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printCatalogs(&out))
	assert.Contains(t, out.String(), "Catálogos MH-DTE")
	assert.Contains(t, out.String(), "San Salvador")
}
