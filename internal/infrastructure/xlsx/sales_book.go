// Package xlsx exporta el libro de ventas en formato Excel.
package xlsx

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/facturacion-sv/internal/domain/dte"
	"github.com/jhoicas/facturacion-sv/internal/domain/entity"
)

// SheetName hoja única del libro.
const SheetName = "Libro de ventas"

var headers = []string{
	"Fecha", "Tipo", "Número de control", "Código de generación", "Receptor",
	"Documento receptor", "Gravado", "IVA", "Retenido", "Total", "Estado", "Sello",
}

// SalesBookExporter implementa dte.SalesBookExporter con excelize.
type SalesBookExporter struct{}

// NewSalesBookExporter construye el exportador.
func NewSalesBookExporter() *SalesBookExporter { return &SalesBookExporter{} }

// ExportSalesBook escribe una fila por documento y una fila final de totales.
func (e *SalesBookExporter) ExportSalesBook(_ context.Context, company *entity.Company, docs []*entity.DTE) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	// Fila 1: emisor; fila 3: cabecera; desde la 4: documentos.
	if company != nil {
		_ = f.SetCellValue(SheetName, "A1", fmt.Sprintf("%s  NIT %s  NRC %s", company.Name, company.NIT, company.NRC))
		_ = f.SetCellStyle(SheetName, "A1", "A1", bold)
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		_ = f.SetCellValue(SheetName, cell, h)
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 3)
	_ = f.SetCellStyle(SheetName, "A3", last, bold)

	var gravado, iva, retenido, total decimal.Decimal
	r := 4
	for _, d := range docs {
		tipo := d.TipoDTE
		if t, ok := dte.ParseDocumentType(d.TipoDTE); ok {
			tipo = t.Short()
		}
		values := []any{
			d.FecEmi.Format("2006-01-02"), tipo, d.NumeroControl, d.CodigoGeneracion,
			d.ReceptorNombre, d.ReceptorDocumento,
			d.TotalGravada.InexactFloat64(), d.TotalIVA.InexactFloat64(),
			d.TotalRetenido.InexactFloat64(), d.TotalPagar.InexactFloat64(),
			d.Status, d.SelloRecibido,
		}
		start, _ := excelize.CoordinatesToCellName(1, r)
		if err := f.SetSheetRow(SheetName, start, &values); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", r, err)
		}
		gravado = gravado.Add(d.TotalGravada)
		iva = iva.Add(d.TotalIVA)
		retenido = retenido.Add(d.TotalRetenido)
		total = total.Add(d.TotalPagar)
		r++
	}

	totals := []any{"TOTALES", nil, nil, nil, nil, nil,
		gravado.InexactFloat64(), iva.InexactFloat64(), retenido.InexactFloat64(), total.InexactFloat64()}
	start, _ := excelize.CoordinatesToCellName(1, r)
	if err := f.SetSheetRow(SheetName, start, &totals); err != nil {
		return nil, fmt.Errorf("xlsx: totales: %w", err)
	}
	_ = f.SetCellStyle(SheetName, start, start, bold)

	first, _ := excelize.CoordinatesToCellName(7, 4)
	end, _ := excelize.CoordinatesToCellName(10, r)
	_ = f.SetCellStyle(SheetName, first, end, money)
	_ = f.SetColWidth(SheetName, "C", "D", 38)
	_ = f.SetColWidth(SheetName, "E", "E", 30)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}
