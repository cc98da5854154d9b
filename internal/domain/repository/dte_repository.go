package repository

import (
	"context"

	"github.com/jhoicas/facturacion-sv/internal/domain/entity"
)

// DTERepository define el puerto de persistencia de documentos emitidos.
// Todas las consultas se acotan por companyID (tenant).
type DTERepository interface {
	// Create persiste el documento. Una colisión de número de control devuelve domain.ErrConflict.
	Create(ctx context.Context, d *entity.DTE) error
	GetByID(ctx context.Context, companyID, id string) (*entity.DTE, error)
	List(ctx context.Context, companyID string, f entity.DTEFilter, limit, offset int) ([]*entity.DTE, error)
	Count(ctx context.Context, companyID string, f entity.DTEFilter) (int, error)
	// GetStatus devuelve solo los campos de estado (ligero, para polling).
	GetStatus(ctx context.Context, companyID, id string) (*entity.DTE, error)
	// UpdateStatus cambia el estado solo si el actual es from; devuelve domain.ErrConflict si no.
	UpdateStatus(ctx context.Context, d *entity.DTE, from string) error
}

// SequenceRepository contador atómico de correlativos por empresa y tipo de DTE.
type SequenceRepository interface {
	// Next reserva el siguiente correlativo y devuelve la cantidad previa de documentos
	// (el correlativo asignado es prior+1). Debe ejecutarse en la misma transacción
	// que persiste el documento.
	Next(ctx context.Context, companyID, tipoDTE string) (prior int64, err error)
}
