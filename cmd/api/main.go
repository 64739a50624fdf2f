package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/Vansh2812/Tailor/internal/application/analytics"
	"github.com/Vansh2812/Tailor/internal/application/auth"
	"github.com/Vansh2812/Tailor/internal/application/billing"
	"github.com/Vansh2812/Tailor/internal/application/orders"
	"github.com/Vansh2812/Tailor/internal/application/usecase"
	infraexcel "github.com/Vansh2812/Tailor/internal/infrastructure/excel"
	inframail "github.com/Vansh2812/Tailor/internal/infrastructure/mail"
	infrapdf "github.com/Vansh2812/Tailor/internal/infrastructure/pdf"
	"github.com/Vansh2812/Tailor/internal/infrastructure/postgres"
	httpRouter "github.com/Vansh2812/Tailor/internal/interfaces/http"
	"github.com/Vansh2812/Tailor/pkg/config"
	"github.com/Vansh2812/Tailor/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración del esquema")
	}

	storeRepo := postgres.NewStoreRepository(pool)
	repairWorkRepo := postgres.NewRepairWorkRepository(pool)
	orderRepo := postgres.NewWorkOrderRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)

	pdfGen := infrapdf.NewMarotoBillGenerator()
	excelGen := infraexcel.NewExcelizeBillGenerator()
	mailer := inframail.NewGomailSender(cfg.SMTP)

	storeUC := usecase.NewStoreUseCase(storeRepo)
	repairWorkUC := usecase.NewRepairWorkUseCase(repairWorkRepo)
	workOrderUC := orders.NewWorkOrderUseCase(orderRepo, storeRepo)
	billingUC := billing.NewBillingUseCase(orderRepo, storeRepo, pdfGen, excelGen)
	dashboardUC := appanalytics.NewDashboardUseCase(statsRepo)
	authUC := auth.NewAuthUseCase(userRepo, mailer, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, time.Duration(cfg.Auth.ResetCodeTTLMinutes)*time.Minute)

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
		Title:    "Tailor API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StoreUC:      storeUC,
		RepairWorkUC: repairWorkUC,
		WorkOrderUC:  workOrderUC,
		BillingUC:    billingUC,
		DashboardUC:  dashboardUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
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
