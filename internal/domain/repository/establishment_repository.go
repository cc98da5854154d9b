package repository

import (
	"context"

	"github.com/jhoicas/facturacion-sv/internal/domain/entity"
)

// EstablishmentRepository define el puerto de persistencia para establecimientos.
type EstablishmentRepository interface {
	// Create persiste el establecimiento; si viene activo desactiva los demás de la empresa.
	Create(ctx context.Context, e *entity.Establishment) error
	// GetActive devuelve el establecimiento activo o nil si la empresa no tiene.
	GetActive(ctx context.Context, companyID string) (*entity.Establishment, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Establishment, error)
}
