package repository

import (
	"context"

	"github.com/jhoicas/facturacion-sv/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByNIT(nit string) (*entity.Company, error)
	// UpdateProfile reemplaza el perfil fiscal (NIT, NRC, actividad, dirección...).
	UpdateProfile(company *entity.Company) error
	// IsActive informa si el tenant existe y no está suspendido.
	IsActive(ctx context.Context, companyID string) (bool, error)
}
