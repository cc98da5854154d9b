package dte

import (
	"context"
	"fmt"

	"github.com/jhoicas/facturacion-sv/internal/domain"
	domaindte "github.com/jhoicas/facturacion-sv/internal/domain/dte"
	"github.com/jhoicas/facturacion-sv/internal/domain/repository"
)

// PDFUseCase genera la representación gráfica de un DTE.
// Solo se permite si el documento ya fue armado (no está en DRAFT).
type PDFUseCase struct {
	dteRepo     repository.DTERepository
	companyRepo repository.CompanyRepository
	generator   PDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(dteRepo repository.DTERepository, companyRepo repository.CompanyRepository, generator PDFGenerator) *PDFUseCase {
	return &PDFUseCase{dteRepo: dteRepo, companyRepo: companyRepo, generator: generator}
}

// Download recupera el documento y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si el documento no existe en la empresa.
//   - domain.ErrConflict         si el documento está en DRAFT (aún sin JSON).
func (uc *PDFUseCase) Download(ctx context.Context, companyID, id string) (pdfBytes []byte, filename string, err error) {
	// ── 1. Cargar documento ───────────────────────────────────────────────────
	d, err := uc.dteRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener dte: %w", err)
	}
	if d == nil {
		return nil, "", domain.ErrNotFound
	}

	// ── 2. Validar que ya fue armado ──────────────────────────────────────────
	if d.Status == string(domaindte.StatusDraft) || len(d.Documento) == 0 {
		return nil, "", fmt.Errorf("%w: el documento está en estado %s, aún no tiene representación gráfica",
			domain.ErrConflict, d.Status)
	}

	// ── 3. Cargar empresa ─────────────────────────────────────────────────────
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener empresa: %w", err)
	}
	if company == nil {
		return nil, "", domain.ErrNotFound
	}

	// ── 4. Generar PDF ────────────────────────────────────────────────────────
	pdfBytes, err = uc.generator.GenerateDTEPDF(ctx, d, company)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, d.NumeroControl + ".pdf", nil
}
