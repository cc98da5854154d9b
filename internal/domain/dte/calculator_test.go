package dte_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion-sv/internal/domain"
	"github.com/jhoicas/facturacion-sv/internal/domain/dte"
)

func item(desc string, qty int, price string) dte.LineItem {
	return dte.LineItem{Description: desc, Quantity: qty, Price: decimal.RequireFromString(price)}
}

// ── IVA ───────────────────────────────────────────────────────────────────────

func TestCalculate_FacturaOchoPorSetentaYCinco(t *testing.T) {
	totals, err := dte.Calculate(dte.Factura, []dte.LineItem{item("Servicio de consultoría", 8, "75")}, dte.CalcOptions{})
	require.NoError(t, err)

	assert.Equal(t, "600.00", dte.Money(totals.Taxable))
	assert.Equal(t, "78.00", dte.Money(totals.Tax))
	assert.Equal(t, "678.00", dte.Money(totals.Total))
	assert.Equal(t, "SEISCIENTOS SETENTA Y OCHO 00/100 DOLARES", totals.Letters)
	require.Len(t, totals.Lines, 1)
	assert.Equal(t, 1, totals.Lines[0].Number)
	assert.Equal(t, "78.00", dte.Money(totals.Lines[0].IVA))
}

func TestCalculate_IVAItemTruncaIVADocumentoRedondea(t *testing.T) {
	totals, err := dte.Calculate(dte.CreditoFiscal, []dte.LineItem{item("Papel", 1, "10.05")}, dte.CalcOptions{})
	require.NoError(t, err)

	// 10.05 × 0.13 = 1.3065
	assert.Equal(t, "1.30", dte.Money(totals.Lines[0].IVA), "el IVA por ítem se trunca")
	assert.Equal(t, "1.31", dte.Money(totals.Tax), "el IVA del documento se redondea")
	assert.Equal(t, "11.36", dte.Money(totals.Total))
}

func TestCalculate_ItemExentoNoGeneraIVA(t *testing.T) {
	exento := item("Medicamento", 2, "5")
	exento.Exempt = true
	totals, err := dte.Calculate(dte.Factura, []dte.LineItem{item("Producto", 1, "100"), exento}, dte.CalcOptions{})
	require.NoError(t, err)

	assert.Equal(t, "100.00", dte.Money(totals.Taxable))
	assert.Equal(t, "10.00", dte.Money(totals.Exempt))
	assert.Equal(t, "13.00", dte.Money(totals.Tax))
	assert.Equal(t, "123.00", dte.Money(totals.Total))
	assert.True(t, totals.Lines[1].IVA.IsZero())
}

func TestCalculate_MixtoConMilesimosCuadraConBruto(t *testing.T) {
	exento := item("Medicamento", 1, "1.005")
	exento.Exempt = true
	totals, err := dte.Calculate(dte.Factura, []dte.LineItem{item("Producto", 1, "1.005"), exento}, dte.CalcOptions{})
	require.NoError(t, err)

	assert.Equal(t, "2.01", dte.Money(totals.Gross))
	assert.Equal(t, "1.01", dte.Money(totals.Taxable))
	assert.Equal(t, "1.00", dte.Money(totals.Exempt))
	assert.Equal(t, "0.13", dte.Money(totals.Tax))
	assert.Equal(t, "2.14", dte.Money(totals.Total))
	assert.True(t, totals.Total.Equal(totals.Gross.Add(totals.Tax)))
	assert.True(t, totals.Gross.Equal(totals.Taxable.Add(totals.Exempt)))
}

func TestCalculate_CantidadCeroEquivaleAUno(t *testing.T) {
	totals, err := dte.Calculate(dte.Factura, []dte.LineItem{item("Producto", 0, "20")}, dte.CalcOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, totals.Lines[0].Item.Quantity)
	assert.Equal(t, "22.60", dte.Money(totals.Total))
}

func TestCalculate_Determinista(t *testing.T) {
	items := []dte.LineItem{item("A", 3, "1.99"), item("B", 7, "0.33")}
	a, err := dte.Calculate(dte.Factura, items, dte.CalcOptions{})
	require.NoError(t, err)
	b, err := dte.Calculate(dte.Factura, items, dte.CalcOptions{})
	require.NoError(t, err)
	assert.Equal(t, dte.Money(a.Total), dte.Money(b.Total))
	assert.Equal(t, a.Letters, b.Letters)
}

// ── Validaciones ──────────────────────────────────────────────────────────────

func TestCalculate_SinItems(t *testing.T) {
	_, err := dte.Calculate(dte.Factura, nil, dte.CalcOptions{})
	assert.ErrorIs(t, err, dte.ErrNoItems)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCalculate_ItemsInvalidos(t *testing.T) {
	cases := map[string]dte.LineItem{
		"sin descripción":   item("  ", 1, "10"),
		"cantidad negativa": item("X", -1, "10"),
		"precio negativo":   item("X", 1, "-0.01"),
	}
	for name, it := range cases {
		_, err := dte.Calculate(dte.Factura, []dte.LineItem{it}, dte.CalcOptions{})
		assert.True(t, dte.IsValidation(err), name)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput), name)
	}
}

func TestCalculate_TipoNoSoportado(t *testing.T) {
	_, err := dte.Calculate(dte.DocumentType(99), []dte.LineItem{item("X", 1, "1")}, dte.CalcOptions{})
	assert.True(t, dte.IsValidation(err))
}

// ── Otros tipos ───────────────────────────────────────────────────────────────

func TestCalculate_ExportacionSinIVA(t *testing.T) {
	totals, err := dte.Calculate(dte.FacturaExportacion, []dte.LineItem{item("Café", 10, "12.5")}, dte.CalcOptions{})
	require.NoError(t, err)
	assert.True(t, totals.Tax.IsZero())
	assert.Equal(t, "125.00", dte.Money(totals.Exempt))
	assert.Equal(t, "125.00", dte.Money(totals.Total))
}

func TestCalculate_SujetoExcluidoTotalEsBruto(t *testing.T) {
	totals, err := dte.Calculate(dte.FacturaSujetoExcluido, []dte.LineItem{item("Leña", 4, "2.25")}, dte.CalcOptions{})
	require.NoError(t, err)
	assert.True(t, totals.Tax.IsZero())
	assert.Equal(t, "9.00", dte.Money(totals.Total))
}

func TestCalculate_Retencion(t *testing.T) {
	iva := item("Factura 001", 1, "1000")
	iva.Category = dte.RetencionIVA1
	renta := item("Honorarios", 1, "500")
	renta.Category = dte.RetencionRenta10

	totals, err := dte.Calculate(dte.ComprobanteRetencion, []dte.LineItem{iva, renta}, dte.CalcOptions{})
	require.NoError(t, err)

	assert.Equal(t, "10.00", dte.Money(totals.IVAWithheld))
	assert.Equal(t, "50.00", dte.Money(totals.RentaWithheld))
	assert.Equal(t, "60.00", dte.Money(totals.Withheld))
	assert.Equal(t, "60.00", dte.Money(totals.Total))
	assert.Equal(t, "1500.00", dte.Money(totals.Gross))
}

func TestCalculate_RetencionCategoriaInvalida(t *testing.T) {
	it := item("X", 1, "100")
	it.Category = "iva_99"
	_, err := dte.Calculate(dte.ComprobanteRetencion, []dte.LineItem{it}, dte.CalcOptions{})
	assert.True(t, dte.IsValidation(err))
}

func TestCalculate_Liquidacion(t *testing.T) {
	opts := dte.CalcOptions{Deductions: decimal.NewFromInt(10), Commission: decimal.NewFromInt(15)}
	totals, err := dte.Calculate(dte.ComprobanteLiquidacion,
		[]dte.LineItem{item("Venta A", 1, "100"), item("Venta B", 2, "50")}, opts)
	require.NoError(t, err)

	assert.Equal(t, "200.00", dte.Money(totals.Gross))
	assert.Equal(t, "175.00", dte.Money(totals.Net))
	assert.Equal(t, "175.00", dte.Money(totals.Total))
	assert.Equal(t, "7.50", dte.Money(totals.CommissionPercent))
	for _, l := range totals.Lines {
		assert.Equal(t, "7.50", dte.Money(l.Commission))
	}
}

func TestCalculate_LiquidacionNetoNegativo(t *testing.T) {
	opts := dte.CalcOptions{Deductions: decimal.NewFromInt(90), Commission: decimal.NewFromInt(20)}
	_, err := dte.Calculate(dte.DocumentoContableLiquidacion, []dte.LineItem{item("Venta", 1, "100")}, opts)
	assert.True(t, dte.IsValidation(err))
}

// ── Parseo ────────────────────────────────────────────────────────────────────

func TestParseItems(t *testing.T) {
	items, err := dte.ParseItems([]byte(`[{"descripcion":"Servicio","cantidad":2,"precio":10.5}]`))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Servicio", items[0].Description)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "10.5", items[0].Price.String())
}

func TestParseItems_Errores(t *testing.T) {
	_, err := dte.ParseItems(nil)
	assert.ErrorIs(t, err, dte.ErrNoItems)

	_, err = dte.ParseItems([]byte(`[]`))
	assert.ErrorIs(t, err, dte.ErrNoItems)

	_, err = dte.ParseItems([]byte(`{"descripcion":`))
	assert.ErrorIs(t, err, dte.ErrInvalidItems)
	assert.Equal(t, "items: "+dte.MsgInvalidItems, err.Error())
}
