// Package dte orquesta la emisión y consulta de documentos tributarios electrónicos:
// carga el perfil fiscal, reserva el correlativo, arma el documento con el núcleo
// (internal/domain/dte) y lo persiste. No transmite a Hacienda.
package dte

import (
	"context"

	"github.com/jhoicas/facturacion-sv/internal/domain/entity"
	"github.com/jhoicas/facturacion-sv/internal/domain/repository"
)

// IssueTxRunner ejecuta fn en una transacción con el contador de correlativos y el repo de DTE.
// Reservar el número y persistir el documento deben confirmarse juntos.
type IssueTxRunner interface {
	RunIssue(ctx context.Context, fn func(
		seqRepo repository.SequenceRepository,
		dteRepo repository.DTERepository,
	) error) error
}

// Metrics contadores de emisión.
type Metrics interface {
	Issued(tipoDTE string)
	SequenceConflict()
}

// PDFGenerator genera la representación gráfica de un DTE ya armado.
type PDFGenerator interface {
	GenerateDTEPDF(ctx context.Context, doc *entity.DTE, company *entity.Company) ([]byte, error)
}

// SalesBookExporter genera el libro de ventas (una fila por documento).
type SalesBookExporter interface {
	ExportSalesBook(ctx context.Context, company *entity.Company, docs []*entity.DTE) ([]byte, error)
}

type nopMetrics struct{}

func (nopMetrics) Issued(string)     {}
func (nopMetrics) SequenceConflict() {}
