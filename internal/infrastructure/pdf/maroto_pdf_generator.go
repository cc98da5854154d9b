// Package pdf implementa la representación gráfica de los DTE.
//
// Layout de la página Carta:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razón Social + NIT/NRC │ Tipo + N° Control + Fecha │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMISOR: Dirección / Tel / Email                            │
//	│  RECEPTOR: Nombre + Documento + contacto                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | Descuento | Total     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / IVA / TOTAL A PAGAR + total en letras  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Código de generación + QR de consulta pública      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"net/url"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/facturacion-sv/internal/domain/dte"
	"github.com/jhoicas/facturacion-sv/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 56, Blue: 147}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// El dólar se escribe con coma de miles y punto decimal.
var moneyPrinter = message.NewPrinter(language.AmericanEnglish)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa dte.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	consultaURL string
}

// NewMarotoPDFGenerator construye el generador. consultaURL es el portal público de
// Hacienda al que apunta el QR; vacío omite el QR.
func NewMarotoPDFGenerator(consultaURL string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{consultaURL: consultaURL}
}

// GenerateDTEPDF genera el PDF a partir del JSON almacenado y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateDTEPDF(_ context.Context, doc *entity.DTE, company *entity.Company) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("pdf: documento nil")
	}
	v, err := parseView(doc.Documento)
	if err != nil {
		return nil, err
	}
	title := "Documento Tributario Electrónico"
	if t, ok := dte.ParseDocumentType(v.Identificacion.TipoDte); ok {
		title = t.Name()
	}
	author := v.issuer().Nombre
	if company != nil && company.Name != "" {
		author = company.Name
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(v, title))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(emisorRow(v.issuer()))
	m.AddRows(receptorRow(v.counterparty()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(v.CuerpoDocumento)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(v.Resumen))
	if v.Resumen.TotalLetras != "" {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("SON: "+v.Resumen.TotalLetras, props.Text{Style: fontstyle.Bold, Size: 8, Top: 2}),
		)))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(v, g.qrURL(v))...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// qrURL enlace de consulta pública: ambiente, código de generación y fecha de emisión.
func (g *MarotoPDFGenerator) qrURL(v *dteView) string {
	if g.consultaURL == "" || v.Identificacion.CodigoGeneracion == "" {
		return ""
	}
	q := url.Values{}
	q.Set("ambiente", v.Identificacion.Ambiente)
	q.Set("codGen", v.Identificacion.CodigoGeneracion)
	q.Set("fechaEmi", v.Identificacion.FecEmi)
	return g.consultaURL + "?" + q.Encode()
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: razón social + NIT/NRC (izq) y tipo + número de control + fecha (der).
func headerRow(v *dteView, title string) core.Row {
	em := v.issuer()
	fecha := v.Identificacion.FecEmi + " " + v.Identificacion.HorEmi

	return row.New(20).Add(
		col.New(7).Add(
			text.New(nonEmpty(em.Nombre, "—"), props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("NIT: %s   NRC: %s", nonEmpty(em.NIT, em.NumDocumento), nonEmpty(em.NRC, "—")), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
			text.New(em.DescActividad, props.Text{Size: 7, Top: 14, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(v.Identificacion.NumeroControl, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// emisorRow: datos de contacto del emisor.
func emisorRow(em *partyView) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DATOS DEL EMISOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Dirección: %s   |   Tel: %s   |   Email: %s",
				nonEmpty(em.address(), "—"),
				nonEmpty(em.Telefono, "—"),
				nonEmpty(em.Correo, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// receptorRow: datos de la contraparte.
func receptorRow(p *partyView) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("RECEPTOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(p.Nombre, "Consumidor final"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Documento: %s   |   NRC: %s   |   Email: %s   |   Dirección: %s",
				nonEmpty(p.document(), "—"),
				nonEmpty(p.NRC, "—"),
				nonEmpty(p.Correo, "—"),
				nonEmpty(p.address(), "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de ítems.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 5, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Descuento", 2, align.Right),
		h("Total", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableDetailRows: una fila por ítem del cuerpo del documento.
func tableDetailRows(items []itemView) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		desc := it.Descripcion
		if it.NumDocumento != "" {
			desc = it.NumDocumento + " " + desc
		}
		qty := ""
		if it.Cantidad > 0 {
			qty = fmt.Sprintf("%d", it.Cantidad)
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(qty, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(desc, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(formatMoney(it.unitPrice()), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(formatMoney(it.MontoDescu), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(formatMoney(it.lineTotal()), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(s summaryView) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grand := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: top,
		})
	}

	return row.New(26).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:", 1),
			label("IVA:", 7),
			label("Retenciones:", 13),
			grand("TOTAL A PAGAR:", 19),
		),
		col.New(3).Add(
			value(formatMoney(s.subtotal()), 1),
			value(formatMoney(s.vat()), 7),
			value(formatMoney(s.IvaRete1.Add(s.ReteRenta)), 13),
			grand(formatMoney(s.grandTotal()), 19),
		),
	)
}

// footerRows: código de generación + QR de consulta + leyenda.
func footerRows(v *dteView, qr string) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("INFORMACIÓN DEL DTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New("Código de generación: "+v.Identificacion.CodigoGeneracion, props.Text{Size: 7, Top: 1}),
		)),
	}
	for _, chunk := range splitEvery("Número de control: "+v.Identificacion.NumeroControl, 90) {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New(chunk, props.Text{Size: 7, Color: colorGray, Top: 0.5}),
		)))
	}
	rows = append(rows, row.New(3))

	if qr != "" {
		rows = append(rows, row.New(45).Add(
			col.New(4).Add(code.NewQr(qr, props.Rect{Percent: 95, Center: true})),
			col.New(8).Add(
				text.New("Escanee el código QR para verificar\neste documento en el portal de Hacienda.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
			),
		))
	}

	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New("Representación gráfica de un Documento Tributario Electrónico. "+
			"Conserve este documento como soporte fiscal.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney "$1,234.50".
func formatMoney(d decimal.Decimal) string {
	return "$" + moneyPrinter.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2)))
}

// splitEvery divide s en trozos de max n bytes.
func splitEvery(s string, n int) []string {
	var parts []string
	for len(s) > n {
		parts = append(parts, s[:n])
		s = s[n:]
	}
	if s != "" {
		parts = append(parts, s)
	}
	return parts
}
