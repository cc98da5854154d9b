package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturacion-sv/internal/application/dto"
	"github.com/jhoicas/facturacion-sv/pkg/hacienda"
)

// CatalogHandler consultas de solo lectura sobre los catálogos de Hacienda.
// Los catálogos son estáticos; las respuestas no dependen del tenant.
type CatalogHandler struct{}

// NewCatalogHandler construye el handler.
func NewCatalogHandler() *CatalogHandler { return &CatalogHandler{} }

// Activity GET /api/catalogs/actividades/:code
func (h *CatalogHandler) Activity(c *fiber.Ctx) error {
	code := c.Params("code")
	return c.JSON(dto.ActivityResponse{
		Code:        code,
		Description: hacienda.ActivityDescription(code, ""),
		Known:       hacienda.KnownActivity(code),
	})
}

// Municipalities GET /api/catalogs/departamentos/:code/municipios
func (h *CatalogHandler) Municipalities(c *fiber.Ctx) error {
	code := c.Params("code")
	name := hacienda.DepartmentName(code)
	if name == "" {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "departamento desconocido"})
	}
	list := hacienda.Municipalities(code)
	out := dto.DepartmentResponse{Code: code, Name: name, Municipalities: make([]dto.MunicipalityResponse, 0, len(list))}
	for _, m := range list {
		out.Municipalities = append(out.Municipalities, dto.MunicipalityResponse{Code: m.Code, Name: m.Name})
	}
	return c.JSON(out)
}

// Tax GET /api/catalogs/tributos/:code
func (h *CatalogHandler) Tax(c *fiber.Ctx) error {
	t := hacienda.LookupTax(c.Params("code"))
	if t.Code == "" {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tributo desconocido"})
	}
	return c.JSON(dto.TaxResponse{Code: t.Code, Description: t.Description, Rate: t.Rate.String(), PerUnit: t.PerUnit})
}

// PaymentMethod GET /api/catalogs/formas-pago/:code. Códigos desconocidos caen en "99".
func (h *CatalogHandler) PaymentMethod(c *fiber.Ctx) error {
	in := c.Params("code")
	return c.JSON(dto.PaymentMethodResponse{Input: in, Code: hacienda.PaymentMethodCode(in)})
}
