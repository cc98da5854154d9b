package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion-sv/internal/domain/entity"
	"github.com/jhoicas/facturacion-sv/internal/infrastructure/pdf"
)

const facturaJSON = `{
  "identificacion": {"version": 1, "ambiente": "00", "tipoDte": "01",
    "numeroControl": "DTE-01-0001-001-000000000000042",
    "codigoGeneracion": "A1B2C3D4-0000-4000-8000-000000000001",
    "fecEmi": "2024-03-14", "horEmi": "10:30:00", "tipoMoneda": "USD"},
  "emisor": {"nit": "06140101011010", "nrc": "1000011", "nombre": "Comercial Cuscatlán",
    "descActividad": "Elaboración de tortillas",
    "direccion": {"departamento": "06", "municipio": "14", "complemento": "Col. Escalón"},
    "telefono": null, "correo": "ventas@example.com"},
  "receptor": {"tipoDocumento": null, "numDocumento": null, "nombre": null, "correo": null},
  "cuerpoDocumento": [
    {"numItem": 1, "cantidad": 2, "descripcion": "Tortillas", "precioUni": 300.00,
     "montoDescu": 0, "ventaNoSuj": 0, "ventaExenta": 0, "ventaGravada": 600.00, "ivaItem": 69.03}
  ],
  "resumen": {"subTotal": 600.00, "totalIva": 69.03, "totalPagar": 678.00,
    "totalLetras": "SEISCIENTOS SETENTA Y OCHO 00/100 USD"}
}`

const donacionJSON = `{
  "identificacion": {"ambiente": "00", "tipoDte": "15", "numeroControl": "DTE-15-0001-001-000000000000001",
    "codigoGeneracion": "A1B2C3D4-0000-4000-8000-000000000002", "fecEmi": "2024-03-14", "horEmi": "10:30:00"},
  "donatario": {"nit": "06140101011010", "nombre": "Fundación Esperanza"},
  "donante": {"tipoDocumento": "36", "numDocumento": "06140101011011", "nombre": "Donante S.A."},
  "cuerpoDocumento": [{"numItem": 1, "tipoDonacion": 1, "cantidad": 1, "descripcion": "Efectivo", "valorUni": 100, "valor": 100}],
  "resumen": {"valorTotal": 100, "totalLetras": "CIEN 00/100 USD"}
}`

func TestGenerateDTEPDF_Factura(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator("https://admin.factura.gob.sv/consultaPublica")
	doc := &entity.DTE{TipoDTE: "01", Documento: []byte(facturaJSON)}

	out, err := g.GenerateDTEPDF(context.Background(), doc, &entity.Company{Name: "Comercial Cuscatlán"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateDTEPDF_DonacionSinQR(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator("")
	doc := &entity.DTE{TipoDTE: "15", Documento: []byte(donacionJSON)}

	out, err := g.GenerateDTEPDF(context.Background(), doc, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateDTEPDF_SinJSON(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator("")

	_, err := g.GenerateDTEPDF(context.Background(), &entity.DTE{}, nil)
	assert.Error(t, err)

	_, err = g.GenerateDTEPDF(context.Background(), &entity.DTE{Documento: []byte("{")}, nil)
	assert.Error(t, err)
}
