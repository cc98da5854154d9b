package http

import (
	"github.com/gofiber/fiber/v2"

	appdte "github.com/jhoicas/facturacion-sv/internal/application/dte"
	"github.com/jhoicas/facturacion-sv/internal/application/dto"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DTEHandler emisión y consulta de documentos tributarios electrónicos (protegido).
type DTEHandler struct {
	issue  *appdte.IssueUseCase
	query  *appdte.QueryUseCase
	pdf    *appdte.PDFUseCase
	export *appdte.ExportUseCase
}

// NewDTEHandler construye el handler.
func NewDTEHandler(issue *appdte.IssueUseCase, query *appdte.QueryUseCase, pdf *appdte.PDFUseCase, export *appdte.ExportUseCase) *DTEHandler {
	return &DTEHandler{issue: issue, query: query, pdf: pdf, export: export}
}

// Issue godoc
// @Summary      Emitir DTE
// @Description  tipo acepta el código ("01") o la sigla ("FE", "CCF", ...). El documento queda PENDING.
// @Tags         dte
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        tipo  path  string               true  "tipo de documento"
// @Param        body  body  dto.IssueDTERequest  true  "ítems, contraparte, pago"
// @Success      201  {object}  dto.DTEResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      412  {object}  dto.ErrorResponse
// @Router       /api/dte/{tipo} [post]
func (h *DTEHandler) Issue(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return unauthorized(c)
	}
	var in dto.IssueDTERequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.issue.Issue(c.UserContext(), companyID, userID, c.Params("tipo"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar DTE
// @Tags         dte
// @Produce      json
// @Security     BearerAuth
// @Param        tipo    query  string  false  "tipo"
// @Param        status  query  string  false  "DRAFT, PENDING, SENT, REJECTED"
// @Param        desde   query  string  false  "YYYY-MM-DD"
// @Param        hasta   query  string  false  "YYYY-MM-DD (inclusive)"
// @Param        limit   query  int     false  "máx. 100"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {object}  dto.DTEListResponse
// @Router       /api/dte [get]
func (h *DTEHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.DTEListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de consulta inválidos"})
	}
	out, err := h.query.List(c.UserContext(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export GET /api/dte/export: libro de ventas en XLSX con los mismos filtros del listado.
func (h *DTEHandler) Export(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.DTEListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de consulta inválidos"})
	}
	data, filename, err := h.export.SalesBook(c.UserContext(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// GetByID GET /api/dte/:id: registro con el JSON del documento.
func (h *DTEHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.query.Get(c.UserContext(), companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// JSON GET /api/dte/:id/json: solo el documento, tal como se transmitiría.
func (h *DTEHandler) JSON(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	raw, err := h.query.JSON(c.UserContext(), companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(raw)
}

// Status GET /api/dte/:id/status: vista liviana para polling.
func (h *DTEHandler) Status(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.query.Status(c.UserContext(), companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Representación gráfica del DTE
// @Tags         dte
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "id del DTE"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/dte/{id}/pdf [get]
func (h *DTEHandler) PDF(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	data, filename, err := h.pdf.Download(c.UserContext(), companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(data)
}

// RecordTransmission godoc
// @Summary      Registrar resultado de la transmisión a Hacienda (admin)
// @Tags         dte
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                   true  "id del DTE"
// @Param        body  body  dto.TransmissionRequest  true  "SENT con sello o REJECTED con observaciones"
// @Success      200  {object}  dto.DTEStatusDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/dte/{id}/transmission [post]
func (h *DTEHandler) RecordTransmission(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.TransmissionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.query.RecordTransmission(c.UserContext(), companyID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
