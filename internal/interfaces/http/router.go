package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturacion-sv/internal/application/auth"
	appdte "github.com/jhoicas/facturacion-sv/internal/application/dte"
	"github.com/jhoicas/facturacion-sv/internal/application/usecase"
	"github.com/jhoicas/facturacion-sv/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CompanyUC  *usecase.CompanyUseCase
	CustomerUC *usecase.CustomerUseCase
	UserUC     *usecase.UserUseCase
	TenantSvc  *usecase.TenantService
	IssueUC    *appdte.IssueUseCase
	QueryUC    *appdte.QueryUseCase
	PDFUC      *appdte.PDFUseCase
	ExportUC   *appdte.ExportUseCase
	JWTSecret  string
	JWTIssuer  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogos (público, estáticos)
	catalogs := api.Group("/catalogs")
	catalogHandler := NewCatalogHandler()
	catalogs.Get("/actividades/:code", catalogHandler.Activity)
	catalogs.Get("/departamentos/:code/municipios", catalogHandler.Municipalities)
	catalogs.Get("/tributos/:code", catalogHandler.Tax)
	catalogs.Get("/formas-pago/:code", catalogHandler.PaymentMethod)

	// Rutas protegidas: Bearer Token + empresa activa
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer), RequireActiveCompany(deps.TenantSvc))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Perfil fiscal y establecimientos
	company := protected.Group("/company")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	company.Get("/profile", companyHandler.GetProfile)
	company.Put("/profile", adminOnly, companyHandler.UpdateProfile)
	company.Get("/establishments", companyHandler.ListEstablishments)
	company.Post("/establishments", adminOnly, companyHandler.CreateEstablishment)

	// Clientes
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)

	// Usuarios de la empresa
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)

	// DTE: /export antes de /:id
	dtes := protected.Group("/dte")
	dteHandler := NewDTEHandler(deps.IssueUC, deps.QueryUC, deps.PDFUC, deps.ExportUC)
	dtes.Get("/", dteHandler.List)
	dtes.Get("/export", dteHandler.Export)
	dtes.Post("/:tipo", dteHandler.Issue)
	dtes.Get("/:id", dteHandler.GetByID)
	dtes.Get("/:id/json", dteHandler.JSON)
	dtes.Get("/:id/status", dteHandler.Status)
	dtes.Get("/:id/pdf", dteHandler.PDF)
	dtes.Post("/:id/transmission", adminOnly, dteHandler.RecordTransmission)
}
