package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturacion-sv/internal/application/dto"
	"github.com/jhoicas/facturacion-sv/internal/application/usecase"
)

// CompanyHandler perfil fiscal del emisor y establecimientos.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// GetProfile godoc
// @Summary      Perfil fiscal de la empresa del token
// @Tags         company
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/company/profile [get]
func (h *CompanyHandler) GetProfile(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.GetProfile(companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateProfile godoc
// @Summary      Actualizar perfil fiscal (admin)
// @Tags         company
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UpdateCompanyProfileRequest  true  "perfil fiscal"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/company/profile [put]
func (h *CompanyHandler) UpdateProfile(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.UpdateCompanyProfileRequest
	if err := bind(c, &in); err != nil {
		return respondBind(c, err)
	}
	out, err := h.uc.UpdateProfile(companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateEstablishment godoc
// @Summary      Registrar establecimiento (admin)
// @Tags         company
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateEstablishmentRequest  true  "establecimiento"
// @Success      201  {object}  dto.EstablishmentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/company/establishments [post]
func (h *CompanyHandler) CreateEstablishment(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.CreateEstablishmentRequest
	if err := bind(c, &in); err != nil {
		return respondBind(c, err)
	}
	out, err := h.uc.CreateEstablishment(c.UserContext(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListEstablishments godoc
// @Summary      Listar establecimientos
// @Tags         company
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.EstablishmentResponse
// @Router       /api/company/establishments [get]
func (h *CompanyHandler) ListEstablishments(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.ListEstablishments(c.UserContext(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
