package dte

import (
	"strings"

	"github.com/jhoicas/facturacion-sv/pkg/hacienda"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CalcOptions parámetros adicionales según el tipo de documento.
type CalcOptions struct {
	// Deductions y Commission aplican solo a liquidaciones (08, 09).
	Deductions decimal.Decimal
	Commission decimal.Decimal
}

// LineTotals resultado del cálculo de una línea.
type LineTotals struct {
	Number     int
	Item       LineItem
	Amount     decimal.Decimal // cantidad × precio, sin redondear
	Taxable    decimal.Decimal // venta gravada
	Exempt     decimal.Decimal // venta exenta o no sujeta
	IVA        decimal.Decimal // IVA del ítem truncado a centavos (informativo)
	Withheld   decimal.Decimal // retención del ítem
	Commission decimal.Decimal // comisión prorrateada (liquidaciones)
}

// DocumentTotals totales agregados del documento, ya redondeados a 2 decimales.
type DocumentTotals struct {
	Type              DocumentType
	Lines             []LineTotals
	Gross             decimal.Decimal // suma de líneas
	Taxable           decimal.Decimal // total gravado
	Exempt            decimal.Decimal // total exento / no sujeto
	Tax               decimal.Decimal // IVA 13% del documento
	IVAWithheld       decimal.Decimal
	RentaWithheld     decimal.Decimal
	Withheld          decimal.Decimal // IVAWithheld + RentaWithheld
	Deductions        decimal.Decimal
	Commission        decimal.Decimal
	CommissionPercent decimal.Decimal
	Net               decimal.Decimal
	Total             decimal.Decimal // monto a pagar / monto del documento
	Letters           string          // Total en letras
}

// Calculate convierte los ítems en totales según las reglas del tipo de documento.
// Es una función pura: para los mismos argumentos siempre produce el mismo resultado.
func Calculate(t DocumentType, items []LineItem, opts CalcOptions) (*DocumentTotals, error) {
	if !t.Valid() {
		return nil, invalid("tipoDte", "tipo de documento no soportado")
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	kind := typeTable[t].kind

	lines := make([]LineTotals, len(items))
	for i, it := range items {
		lt, err := calculateLine(kind, i+1, it)
		if err != nil {
			return nil, err
		}
		lines[i] = lt
	}

	out := &DocumentTotals{Type: t, Lines: lines}
	var gross, taxable, ivaW, rentaW decimal.Decimal
	for _, l := range lines {
		gross = gross.Add(l.Amount)
		taxable = taxable.Add(l.Taxable)
		if isIVACategory(l.Item.Category) {
			ivaW = ivaW.Add(l.Withheld)
		} else {
			rentaW = rentaW.Add(l.Withheld)
		}
	}
	// Exento se deriva del bruto para que gravado + exento = bruto al centavo.
	out.Gross = round2(gross)
	out.Taxable = round2(taxable)
	out.Exempt = out.Gross.Sub(out.Taxable)

	switch kind {
	case kindVAT:
		out.Tax = round2(out.Taxable.Mul(hacienda.IVARate))
		out.Total = out.Gross.Add(out.Tax)
	case kindWithholding:
		out.IVAWithheld = ivaW
		out.RentaWithheld = rentaW
		out.Withheld = ivaW.Add(rentaW)
		out.Total = out.Withheld
	case kindSettlement:
		if err := settle(out, opts); err != nil {
			return nil, err
		}
	default:
		out.Total = out.Gross
	}
	out.Letters = AmountToWords(out.Total)
	return out, nil
}

func calculateLine(kind calcKind, n int, it LineItem) (LineTotals, error) {
	it.Description = strings.TrimSpace(it.Description)
	if it.Description == "" {
		return LineTotals{}, invalid("items", "el ítem %d no tiene descripción", n)
	}
	if it.Quantity < 0 {
		return LineTotals{}, invalid("items", "la cantidad del ítem %d debe ser positiva", n)
	}
	if it.Quantity == 0 {
		it.Quantity = 1
	}
	if it.Price.IsNegative() {
		return LineTotals{}, invalid("items", "el precio del ítem %d no puede ser negativo", n)
	}
	if it.Kind == 0 {
		it.Kind = hacienda.TipoItemBienes
	}

	lt := LineTotals{Number: n, Item: it}
	lt.Amount = it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))

	switch kind {
	case kindVAT:
		if it.Exempt {
			lt.Exempt = lt.Amount
		} else {
			lt.Taxable = lt.Amount
			lt.IVA = lt.Amount.Mul(hacienda.IVARate).Truncate(2)
		}
	case kindWithholding:
		rate, ok := WithholdingRate(it.Category)
		if !ok {
			return LineTotals{}, invalid("items", "categoría de retención inválida en el ítem %d", n)
		}
		lt.Taxable = lt.Amount
		lt.Withheld = round2(lt.Amount.Mul(rate))
	case kindSettlement, kindInformative:
		lt.Taxable = lt.Amount
	case kindExempt:
		lt.Exempt = lt.Amount
	}
	return lt, nil
}

// settle aplica net = bruto − deducciones − comisión y prorratea la comisión
// en partes iguales entre los ítems.
func settle(out *DocumentTotals, opts CalcOptions) error {
	if opts.Deductions.IsNegative() || opts.Commission.IsNegative() {
		return invalid("liquidacion", "deducciones y comisión no pueden ser negativas")
	}
	out.Deductions = round2(opts.Deductions)
	out.Commission = round2(opts.Commission)
	out.Net = out.Gross.Sub(out.Deductions).Sub(out.Commission)
	if out.Net.IsNegative() {
		return invalid("liquidacion", "las deducciones y la comisión exceden el monto bruto")
	}
	if !out.Gross.IsZero() {
		out.CommissionPercent = round2(out.Commission.Div(out.Gross).Mul(hundred))
	}
	share := round2(out.Commission.Div(decimal.NewFromInt(int64(len(out.Lines)))))
	for i := range out.Lines {
		out.Lines[i].Commission = share
	}
	out.Total = out.Net
	return nil
}

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Money formatea un monto con dos decimales fijos.
func Money(d decimal.Decimal) string {
	return d.Round(2).StringFixed(2)
}
