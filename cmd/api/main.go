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
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/gestor-irrigacion/internal/application/auth"
	"github.com/jhoicas/gestor-irrigacion/internal/application/purchasing"
	infraexcel "github.com/jhoicas/gestor-irrigacion/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/gestor-irrigacion/internal/infrastructure/pdf"
	"github.com/jhoicas/gestor-irrigacion/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/gestor-irrigacion/internal/interfaces/http"
	"github.com/jhoicas/gestor-irrigacion/pkg/config"
	"github.com/jhoicas/gestor-irrigacion/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	loc, err := cfg.Purchasing.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("zona horaria de compras")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	applied, err := postgres.ApplyMigrations(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Strs("migraciones", applied).Msg("esquema al día")

	userRepo := postgres.NewUserRepository(pool)
	orderRepo := postgres.NewPurchaseOrderRepository(pool)
	thresholdRepo := postgres.NewThresholdRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	summaryRepo := postgres.NewSummaryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	purchasingCfg := purchasing.Config{
		DefaultDestination:   cfg.Purchasing.DefaultDestination,
		DefaultDeliveryTerms: cfg.Purchasing.DefaultDeliveryTerms,
		Location:             loc,
		IssuerName:           cfg.Purchasing.IssuerName,
		IssuerCUIT:           cfg.Purchasing.IssuerCUIT,
	}

	// Documentos: PDF propio y planilla oficial (plantilla opcional)
	renderers := map[string]purchasing.DocumentRenderer{
		purchasing.FormatPDF:  infrapdf.NewMarotoRenderer(),
		purchasing.FormatXLSX: infraexcel.NewExcelizeRenderer(cfg.Purchasing.ExcelTemplate),
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestor Irrigación API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ThresholdUC:   purchasing.NewThresholdUseCase(thresholdRepo),
		SupplierUC:    purchasing.NewSupplierUseCase(supplierRepo),
		CreateOrderUC: purchasing.NewCreatePurchaseOrderUseCase(txRunner, purchasingCfg, log),
		DraftUC:       purchasing.NewDraftUseCase(orderRepo, thresholdRepo, purchasingCfg),
		OrderQueryUC:  purchasing.NewOrderQueryUseCase(orderRepo),
		SummaryUC:     purchasing.NewSummaryUseCase(summaryRepo, purchasingCfg),
		DocumentUC:    purchasing.NewDocumentUseCase(orderRepo, supplierRepo, renderers, purchasingCfg),
		JWTSecret:     cfg.JWT.Secret,
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
