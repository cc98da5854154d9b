package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/facturacion-sv/internal/application/auth"
	appdte "github.com/jhoicas/facturacion-sv/internal/application/dte"
	"github.com/jhoicas/facturacion-sv/internal/application/usecase"
	domaindte "github.com/jhoicas/facturacion-sv/internal/domain/dte"
	"github.com/jhoicas/facturacion-sv/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/facturacion-sv/internal/infrastructure/pdf"
	"github.com/jhoicas/facturacion-sv/internal/infrastructure/postgres"
	"github.com/jhoicas/facturacion-sv/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/facturacion-sv/internal/interfaces/http"
	"github.com/jhoicas/facturacion-sv/pkg/config"
	"github.com/jhoicas/facturacion-sv/pkg/jwt"
	"github.com/jhoicas/facturacion-sv/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:      cfg.App.Env,
		Level:    cfg.App.LogLevel,
		Service:  cfg.App.Name,
		Ambiente: cfg.DTE.Ambiente,
	})
	log.Info().Str("env", cfg.App.Env).Msg("iniciando aplicación")

	if err := postgres.MigrateUp(cfg.DB); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	establishmentRepo := postgres.NewEstablishmentRepository(pool)
	dteRepo := postgres.NewDTERepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	dteCfg := domaindte.Config{
		Ambiente:      cfg.DTE.Ambiente,
		CodEstable:    cfg.DTE.CodEstable,
		CodPuntoVenta: cfg.DTE.CodPuntoVenta,
		Location:      cfg.DTE.Location(),
	}
	dteMetrics := metrics.NewDTEMetrics(nil)

	issueUC := appdte.NewIssueUseCase(txRunner, companyRepo, customerRepo, establishmentRepo, dteCfg, dteMetrics, log)
	queryUC := appdte.NewQueryUseCase(dteRepo, log)
	pdfUC := appdte.NewPDFUseCase(dteRepo, companyRepo, infrapdf.NewMarotoPDFGenerator(cfg.DTE.ConsultaURL))
	exportUC := appdte.NewExportUseCase(dteRepo, companyRepo, xlsx.NewSalesBookExporter())

	companyUC := usecase.NewCompanyUseCase(companyRepo, establishmentRepo, txRunner)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	tenantSvc := usecase.NewTenantService(companyRepo)
	signer, err := jwt.NewSigner(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL())
	if err != nil {
		log.Fatal().Err(err).Msg("configurar JWT")
	}
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, signer)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // PDF y libro de ventas
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(logger.FiberMiddleware(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Facturación DTE API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CompanyUC:  companyUC,
		CustomerUC: customerUC,
		UserUC:     userUC,
		TenantSvc:  tenantSvc,
		IssueUC:    issueUC,
		QueryUC:    queryUC,
		PDFUC:      pdfUC,
		ExportUC:   exportUC,
		JWTSecret:  cfg.JWT.Secret,
		JWTIssuer:  cfg.JWT.Issuer,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
