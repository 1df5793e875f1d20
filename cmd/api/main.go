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

	appforecast "github.com/jhoicas/Ventario-api/internal/application/forecast"
	appsales "github.com/jhoicas/Ventario-api/internal/application/sales"
	appstock "github.com/jhoicas/Ventario-api/internal/application/stock"
	"github.com/jhoicas/Ventario-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Ventario-api/internal/interfaces/http"
	"github.com/jhoicas/Ventario-api/pkg/config"
	"github.com/jhoicas/Ventario-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, "info")
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

	productRepo := postgres.NewProductRepository(pool)
	movRepo := postgres.NewMovementRepository(pool)
	resRepo := postgres.NewReservationRepository(pool)
	ackRepo := postgres.NewAlertAckRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledgerUC := appstock.NewLedgerUseCase(txRunner, productRepo, movRepo)
	productUC := appstock.NewProductUseCase(productRepo, resRepo, ledgerUC)
	reservationUC := appstock.NewReservationUseCase(resRepo, productRepo)
	alertUC := appstock.NewAlertUseCase(productRepo, resRepo, ackRepo)
	auditUC := appstock.NewAuditUseCase(txRunner, productRepo, auditRepo)
	saleUC := appsales.NewUseCase(txRunner, saleRepo, productRepo)
	forecastUC := appforecast.NewUseCase(productRepo, resRepo, saleRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ventario API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:     productUC,
		LedgerUC:      ledgerUC,
		ReservationUC: reservationUC,
		AlertUC:       alertUC,
		AuditUC:       auditUC,
		SaleUC:        saleUC,
		ForecastUC:    forecastUC,
		Env:           cfg.App.Env,
		JWT:           cfg.JWT,
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
