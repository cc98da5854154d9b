package xlsx_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/facturacion-sv/internal/domain/entity"
	"github.com/jhoicas/facturacion-sv/internal/infrastructure/xlsx"
)

func doc(tipo, total, iva string) *entity.DTE {
	return &entity.DTE{
		TipoDTE:        tipo,
		NumeroControl:  "DTE-" + tipo + "-0001-001-000000000000001",
		ReceptorNombre: "Cliente",
		Status:         "SENT",
		TotalGravada:   decimal.RequireFromString(total).Sub(decimal.RequireFromString(iva)),
		TotalIVA:       decimal.RequireFromString(iva),
		TotalPagar:     decimal.RequireFromString(total),
		FecEmi:         time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
	}
}

func TestExportSalesBook_FilasYTotales(t *testing.T) {
	data, err := xlsx.NewSalesBookExporter().ExportSalesBook(context.Background(),
		&entity.Company{Name: "Comercial Cuscatlán", NIT: "06140101011010", NRC: "1000011"},
		[]*entity.DTE{doc("01", "678.00", "78.00"), doc("03", "113.00", "13.00")})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	cell := func(ref string) string {
		v, err := f.GetCellValue(xlsx.SheetName, ref)
		require.NoError(t, err)
		return v
	}
	assert.Contains(t, cell("A1"), "Comercial Cuscatlán")
	assert.Equal(t, "Número de control", cell("C3"))
	assert.Equal(t, "FE", cell("B4"))
	assert.Equal(t, "CCF", cell("B5"))
	assert.Equal(t, "TOTALES", cell("A6"))

	total, err := f.GetCellValue(xlsx.SheetName, "J6", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "791", total)
}

func TestExportSalesBook_SinDocumentos(t *testing.T) {
	data, err := xlsx.NewSalesBookExporter().ExportSalesBook(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
