package dte

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/facturacion-sv/internal/application/dto"
	"github.com/jhoicas/facturacion-sv/internal/domain"
	"github.com/jhoicas/facturacion-sv/internal/domain/entity"
	"github.com/jhoicas/facturacion-sv/internal/domain/repository"
)

// maxExportRows tope de documentos por libro exportado.
const maxExportRows = 5000

// exportPageSize tamaño de página al recorrer el listado.
const exportPageSize = 500

// ExportUseCase genera el libro de ventas en XLSX.
type ExportUseCase struct {
	dteRepo     repository.DTERepository
	companyRepo repository.CompanyRepository
	exporter    SalesBookExporter
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(dteRepo repository.DTERepository, companyRepo repository.CompanyRepository, exporter SalesBookExporter) *ExportUseCase {
	return &ExportUseCase{dteRepo: dteRepo, companyRepo: companyRepo, exporter: exporter}
}

// SalesBook exporta los documentos que cumplen el filtro (sin paginación, hasta maxExportRows).
func (uc *ExportUseCase) SalesBook(ctx context.Context, companyID string, in dto.DTEListRequest) ([]byte, string, error) {
	f, err := ParseFilter(in)
	if err != nil {
		return nil, "", err
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, "", fmt.Errorf("exportar: obtener empresa: %w", err)
	}
	if company == nil {
		return nil, "", domain.ErrNotFound
	}

	var docs []*entity.DTE
	for offset := 0; offset < maxExportRows; offset += exportPageSize {
		page, err := uc.dteRepo.List(ctx, companyID, f, exportPageSize, offset)
		if err != nil {
			return nil, "", fmt.Errorf("exportar: listar dte: %w", err)
		}
		docs = append(docs, page...)
		if len(page) < exportPageSize {
			break
		}
	}

	data, err := uc.exporter.ExportSalesBook(ctx, company, docs)
	if err != nil {
		return nil, "", fmt.Errorf("exportar: generar libro: %w", err)
	}
	return data, fmt.Sprintf("libro_ventas_%s.xlsx", time.Now().Format("20060102")), nil
}
