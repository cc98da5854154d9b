package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturacion-sv/internal/application/dto"
)

// tenantChecker es el contrato mínimo que necesita el middleware para verificar la empresa.
// Lo implementa *usecase.TenantService.
type tenantChecker interface {
	IsActive(ctx context.Context, companyID string) (bool, error)
}

// RequireActiveCompany verifica que la empresa del token exista y no esté suspendida.
// Debe usarse DESPUÉS de AuthMiddleware (necesita LocalCompanyID).
//
// Comportamiento:
//   - 401 si no hay company_id en el contexto.
//   - 403 COMPANY_SUSPENDED si la empresa no existe o está suspendida.
//   - 503 si falla la consulta a la DB.
func RequireActiveCompany(checker tenantChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		companyID := GetCompanyID(c)
		if companyID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "company_id no encontrado en el token",
			})
		}

		active, err := checker.IsActive(c.UserContext(), companyID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "TENANT_CHECK_FAILED",
				Message: "no se pudo verificar la empresa, intente más tarde",
			})
		}
		if !active {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "COMPANY_SUSPENDED",
				Message: "la empresa no está activa",
			})
		}
		return c.Next()
	}
}
