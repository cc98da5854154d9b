package dte_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion-sv/internal/domain"
	"github.com/jhoicas/facturacion-sv/internal/domain/dte"
)

var elSalvador = time.FixedZone("CST", -6*3600)

func testProfile() dte.FiscalProfile {
	return dte.FiscalProfile{
		NIT:          "0614-150190-101-2",
		NRC:          "123456-7",
		Name:         "Servicios Técnicos S.A. de C.V.",
		TradeName:    "ServiTec",
		ActivityCode: "62010",
		Email:        "facturas@servitec.com.sv",
	}
}

func testCounterparty() dte.Counterparty {
	return dte.Counterparty{
		DocumentNumber: "04567890-3",
		NIT:            "0614-010101-101-0",
		NRC:            "100001-1",
		Name:           "Cliente Ejemplo S.A.",
		ActivityCode:   "46900",
		Email:          "compras@cliente.com.sv",
		CountryCode:    "9905",
		CountryName:    "Guatemala",
	}
}

func assembleInput(t *testing.T, typ dte.DocumentType, items ...dte.LineItem) dte.AssembleInput {
	t.Helper()
	totals, err := dte.Calculate(typ, items, dte.CalcOptions{})
	require.NoError(t, err)
	return dte.AssembleInput{
		Type:         typ,
		Profile:      testProfile(),
		Counterparty: testCounterparty(),
		Totals:       totals,
		Sequence:     dte.NewSequenceIdentifier(typ, "", "", 0),
		IssuedAt:     time.Date(2024, 3, 15, 2, 30, 0, 0, time.UTC),
	}
}

// ── Perfil fiscal ─────────────────────────────────────────────────────────────

func TestCheckProfile(t *testing.T) {
	assert.NoError(t, dte.CheckProfile(testProfile()))

	p := testProfile()
	p.NRC = "  "
	assert.ErrorIs(t, dte.CheckProfile(p), domain.ErrIncompleteProfile)

	p = testProfile()
	p.NIT = ""
	assert.ErrorIs(t, dte.CheckProfile(p), dte.ErrIncompleteProfile)
}

// ── Factura ───────────────────────────────────────────────────────────────────

func TestAssemble_Factura(t *testing.T) {
	in := assembleInput(t, dte.Factura, item("Servicio de consultoría", 8, "75"))
	doc, err := dte.Assemble(dte.Config{Location: elSalvador}, in)
	require.NoError(t, err)

	fe, ok := doc.(*dte.FacturaDocument)
	require.True(t, ok)
	assert.Equal(t, dte.Factura, fe.Type())

	id := fe.Identificacion
	assert.Equal(t, 1, id.Version)
	assert.Equal(t, "00", id.Ambiente, "ambiente inválido o vacío usa pruebas")
	assert.Equal(t, "01", id.TipoDte)
	assert.Equal(t, "DTE-01-0001-001-000000000000001", id.NumeroControl)
	assert.Equal(t, "2024-03-14", id.FecEmi)
	assert.Equal(t, "20:30:00", id.HorEmi)
	assert.Equal(t, "USD", id.TipoMoneda)

	assert.Equal(t, "06141501901012", fe.Emisor.NIT)
	assert.Equal(t, "1234567", fe.Emisor.NRC)
	assert.Equal(t, "00000000", fe.Emisor.Telefono)
	assert.Equal(t, "06", fe.Emisor.Direccion.Departamento)
	assert.Equal(t, "14", fe.Emisor.Direccion.Municipio)
	assert.Equal(t, "San Salvador, San Salvador", fe.Emisor.Direccion.Complemento)
	require.NotNil(t, fe.Emisor.CodEstable)
	assert.Equal(t, "0001", *fe.Emisor.CodEstable)

	require.Len(t, fe.CuerpoDocumento, 1)
	assert.Equal(t, "78.00", dte.Money(fe.CuerpoDocumento[0].IvaItem.Decimal()))
	assert.Equal(t, []string{"20"}, fe.CuerpoDocumento[0].Tributos)

	require.Len(t, fe.Resumen.Tributos, 1)
	assert.Equal(t, "20", fe.Resumen.Tributos[0].Codigo)
	assert.Equal(t, "78.00", dte.Money(fe.Resumen.Tributos[0].Valor.Decimal()))
	require.NotNil(t, fe.Resumen.TotalIva)
	assert.Equal(t, "78.00", dte.Money(fe.Resumen.TotalIva.Decimal()))
	assert.Equal(t, "678.00", dte.Money(fe.Resumen.TotalPagar.Decimal()))
	assert.Equal(t, "SEISCIENTOS SETENTA Y OCHO 00/100 DOLARES", doc.TotalLetras())
	assert.Equal(t, 1, fe.Resumen.CondicionOperacion)
	require.Len(t, fe.Resumen.Pagos, 1)
	assert.Equal(t, "99", fe.Resumen.Pagos[0].Codigo)
}

func TestAssemble_FacturaJSONConMontosNumericos(t *testing.T) {
	in := assembleInput(t, dte.Factura, item("Servicio", 8, "75"))
	in.Payment.Method = "cash"
	doc, err := dte.Assemble(dte.Config{Ambiente: "01"}, in)
	require.NoError(t, err)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	s := string(raw)
	assert.Contains(t, s, `"totalPagar":678.00`)
	assert.Contains(t, s, `"ambiente":"01"`)
	assert.Contains(t, s, `"codigo":"01"`)
	assert.NotContains(t, s, `"ivaPerci1"`)
}

func TestAssemble_FacturaReceptorAnonimo(t *testing.T) {
	in := assembleInput(t, dte.Factura, item("Producto", 1, "10"))
	in.Counterparty = dte.Counterparty{}
	doc, err := dte.Assemble(dte.Config{}, in)
	require.NoError(t, err)
	fe := doc.(*dte.FacturaDocument)
	assert.Nil(t, fe.Receptor.Nombre)
	assert.Nil(t, fe.Receptor.Direccion)
}

// ── Crédito fiscal y notas ────────────────────────────────────────────────────

func TestAssemble_CreditoFiscal(t *testing.T) {
	in := assembleInput(t, dte.CreditoFiscal, item("Papel", 1, "10.05"))
	doc, err := dte.Assemble(dte.Config{}, in)
	require.NoError(t, err)

	ccf := doc.(*dte.CreditoFiscalDocument)
	assert.Equal(t, 3, ccf.Identificacion.Version)
	assert.Equal(t, "06140101011010", ccf.Receptor.NIT)
	assert.Equal(t, "1000011", ccf.Receptor.NRC)
	assert.Nil(t, ccf.Resumen.TotalIva)
	require.NotNil(t, ccf.Resumen.IvaPerci1)
	assert.Equal(t, "1.31", dte.Money(ccf.Resumen.Tributos[0].Valor.Decimal()))
	assert.Equal(t, "11.36", dte.Money(ccf.Resumen.TotalPagar.Decimal()))
}

func TestAssemble_CreditoFiscalSinNRC(t *testing.T) {
	in := assembleInput(t, dte.CreditoFiscal, item("Papel", 1, "10"))
	in.Counterparty.NRC = ""
	_, err := dte.Assemble(dte.Config{}, in)
	assert.True(t, dte.IsValidation(err))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAssemble_NotaCreditoSinDocumentoRelacionado(t *testing.T) {
	in := assembleInput(t, dte.NotaCredito, item("Devolución", 1, "10"))
	_, err := dte.Assemble(dte.Config{}, in)
	assert.True(t, dte.IsValidation(err))
}

func TestAssemble_NotaDebito(t *testing.T) {
	in := assembleInput(t, dte.NotaDebito, item("Intereses", 1, "25"))
	in.Related = []dte.RelatedDocument{{
		Type:     dte.CreditoFiscal,
		Number:   "A1B2C3D4-0000-4000-8000-000000000001",
		IssuedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}}
	doc, err := dte.Assemble(dte.Config{}, in)
	require.NoError(t, err)

	nd := doc.(*dte.NotaAjusteDocument)
	assert.Equal(t, dte.NotaDebito, nd.Type())
	require.Len(t, nd.DocumentoRelacionado, 1)
	assert.Equal(t, "03", nd.DocumentoRelacionado[0].TipoDocumento)
	assert.Equal(t, 2, nd.DocumentoRelacionado[0].TipoGeneracion)
	assert.Equal(t, "2024-02-01", nd.DocumentoRelacionado[0].FechaEmision)
	require.NotNil(t, nd.CuerpoDocumento[0].NumeroDocumento)
	assert.Equal(t, in.Related[0].Number, *nd.CuerpoDocumento[0].NumeroDocumento)
}

func TestAssemble_FacturaMixtaSubtotalEsBruto(t *testing.T) {
	exento := item("Medicamento", 1, "1.005")
	exento.Exempt = true
	in := assembleInput(t, dte.Factura, item("Producto", 1, "1.005"), exento)

	doc, err := dte.Assemble(dte.Config{Location: elSalvador}, in)
	require.NoError(t, err)

	fe := doc.(*dte.FacturaDocument)
	assert.Equal(t, "1.01", dte.Money(fe.Resumen.TotalGravada.Decimal()))
	assert.Equal(t, "1.00", dte.Money(fe.Resumen.TotalExenta.Decimal()))
	assert.Equal(t, "2.01", dte.Money(fe.Resumen.SubTotalVentas.Decimal()))
	assert.Equal(t, "2.01", dte.Money(fe.Resumen.SubTotal.Decimal()))
	assert.Equal(t, "2.14", dte.Money(fe.Resumen.MontoTotalOperacion.Decimal()))
}

// ── Retención y liquidación ───────────────────────────────────────────────────

func TestAssemble_RetencionCodigosMH(t *testing.T) {
	iva := item("Factura 15", 1, "1000")
	iva.Category = dte.RetencionIVA1
	renta := item("Honorarios", 1, "500")
	renta.Category = dte.RetencionRenta10

	in := assembleInput(t, dte.ComprobanteRetencion, iva, renta)
	doc, err := dte.Assemble(dte.Config{Location: elSalvador}, in)
	require.NoError(t, err)

	cr := doc.(*dte.RetencionDocument)
	require.Len(t, cr.CuerpoDocumento, 2)
	assert.Equal(t, "22", cr.CuerpoDocumento[0].CodigoRetencionMH)
	assert.Equal(t, "10.00", dte.Money(cr.CuerpoDocumento[0].IvaRetenido.Decimal()))
	assert.True(t, cr.CuerpoDocumento[0].RentaRetenida.Decimal().IsZero())
	assert.Empty(t, cr.CuerpoDocumento[1].CodigoRetencionMH, "la renta no tiene código CAT-006")
	assert.True(t, cr.CuerpoDocumento[1].IvaRetenido.Decimal().IsZero())
	assert.Equal(t, "50.00", dte.Money(cr.CuerpoDocumento[1].RentaRetenida.Decimal()))
	assert.Equal(t, "2024-03-14", cr.CuerpoDocumento[0].FechaEmision)
	assert.Equal(t, "60.00", dte.Money(cr.Resumen.TotalRetenido.Decimal()))
	assert.Equal(t, "DIEZ 00/100 DOLARES", cr.Resumen.TotalIVAretenidoLetras)
	assert.Equal(t, "SESENTA 00/100 DOLARES", cr.TotalLetras())
	assert.Equal(t, "13", cr.Receptor.TipoDocumento, "9 dígitos se infiere DUI")
	assert.Equal(t, "045678903", cr.Receptor.NumDocumento)
}

func TestAssemble_ContableLiquidacion(t *testing.T) {
	totals, err := dte.Calculate(dte.DocumentoContableLiquidacion,
		[]dte.LineItem{item("Venta", 2, "50")},
		dte.CalcOptions{Commission: decimal.RequireFromString("5")})
	require.NoError(t, err)

	in := assembleInput(t, dte.DocumentoContableLiquidacion, item("Venta", 2, "50"))
	in.Totals = totals
	doc, err := dte.Assemble(dte.Config{}, in)
	require.NoError(t, err)

	dcl := doc.(*dte.ContableLiquidacionDocument)
	assert.Equal(t, "Cliente Ejemplo S.A.", dcl.SujetoExcluido.Nombre)
	assert.Equal(t, "95.00", dte.Money(dcl.Resumen.LiquidoPagar.Decimal()))
	assert.Equal(t, "5.00", dte.Money(dcl.Resumen.PorcentComision.Decimal()))
}

// ── Generales ─────────────────────────────────────────────────────────────────

func TestAssemble_TodosLosTipos(t *testing.T) {
	for _, typ := range dte.AllTypes() {
		it := item("Línea", 1, "100")
		if typ == dte.ComprobanteRetencion {
			it.Category = dte.RetencionIVA1
		}
		in := assembleInput(t, typ, it)
		if typ.RequiresRelatedDocument() {
			in.Related = []dte.RelatedDocument{{Type: dte.CreditoFiscal, Number: "X-1", IssuedAt: in.IssuedAt}}
		}
		doc, err := dte.Assemble(dte.Config{}, in)
		require.NoError(t, err, typ.Short())
		assert.Equal(t, typ, doc.Type(), typ.Short())
		assert.Equal(t, typ.Code(), doc.Ident().TipoDte, typ.Short())
		assert.Equal(t, typ.Version(), doc.Ident().Version, typ.Short())
		assert.NotEmpty(t, doc.TotalLetras(), typ.Short())

		_, err = json.Marshal(doc)
		assert.NoError(t, err, typ.Short())
	}
}

func TestAssemble_TotalesDeOtroTipo(t *testing.T) {
	in := assembleInput(t, dte.Factura, item("X", 1, "1"))
	in.Type = dte.CreditoFiscal
	_, err := dte.Assemble(dte.Config{}, in)
	assert.True(t, dte.IsValidation(err))
}

func TestAssemble_SinIdentificadores(t *testing.T) {
	in := assembleInput(t, dte.Factura, item("X", 1, "1"))
	in.Sequence = dte.SequenceIdentifier{}
	_, err := dte.Assemble(dte.Config{}, in)
	assert.True(t, dte.IsValidation(err))
}

func TestEmptyDocument(t *testing.T) {
	for _, typ := range dte.AllTypes() {
		doc := dte.EmptyDocument(typ)
		require.NotNil(t, doc, typ.Short())
		assert.Equal(t, typ, doc.Type(), typ.Short())
	}
	assert.Nil(t, dte.EmptyDocument(dte.DocumentType(0)))
}
