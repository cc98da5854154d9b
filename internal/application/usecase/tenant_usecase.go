package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/facturacion-sv/internal/domain/repository"
)

// TenantService verifica que la empresa del token pueda operar (existe y no está suspendida).
// Es el único punto de la aplicación que conoce la regla de suspensión.
type TenantService struct {
	companyRepo repository.CompanyRepository
}

// NewTenantService construye el servicio.
func NewTenantService(companyRepo repository.CompanyRepository) *TenantService {
	return &TenantService{companyRepo: companyRepo}
}

// IsActive informa si la empresa puede emitir y consultar.
// Devuelve error solo ante fallos de infraestructura (DB caída, timeout, etc.).
func (s *TenantService) IsActive(ctx context.Context, companyID string) (bool, error) {
	if companyID == "" {
		return false, fmt.Errorf("tenant: companyID es obligatorio")
	}
	return s.companyRepo.IsActive(ctx, companyID)
}
