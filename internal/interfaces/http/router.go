package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventario-api/internal/application/forecast"
	"github.com/jhoicas/Ventario-api/internal/application/sales"
	"github.com/jhoicas/Ventario-api/internal/application/stock"
	"github.com/jhoicas/Ventario-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC     *stock.ProductUseCase
	LedgerUC      *stock.LedgerUseCase
	ReservationUC *stock.ReservationUseCase
	AlertUC       *stock.AlertUseCase
	AuditUC       *stock.AuditUseCase
	SaleUC        *sales.UseCase
	ForecastUC    *forecast.UseCase
	Env           string
	JWT           config.JWTConfig
}

// Router registra las rutas de la API. Toda la API es protegida (Bearer Token).
func Router(app *fiber.App, deps RouterDeps) {
	// Emisión de tokens de prueba, solo en development. Se registra antes del
	// grupo protegido para quedar fuera del middleware de autenticación.
	if deps.Env == "development" {
		app.Post("/api/auth/token", NewAuthHandler(deps.JWT).Token)
	}

	api := app.Group("/api", AuthMiddleware(deps.JWT.Secret))

	// Products (catálogo con disponibilidad derivada)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Stock (libro de movimientos y transferencias)
	stockGroup := api.Group("/stock")
	stockHandler := NewStockHandler(deps.LedgerUC)
	stockGroup.Post("/movements", stockHandler.RegisterMovement)
	stockGroup.Get("/movements", stockHandler.ListMovements)
	stockGroup.Post("/transfers", stockHandler.Transfer)

	// Reservations (retenciones temporales)
	reservations := api.Group("/reservations")
	reservationHandler := NewReservationHandler(deps.ReservationUC)
	reservations.Post("/", reservationHandler.Reserve)
	reservations.Get("/", reservationHandler.ListLive)
	reservations.Delete("/:id", reservationHandler.Cancel)

	// Alerts (derivadas, con reconocimiento pegajoso)
	alerts := api.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertUC)
	alerts.Get("/", alertHandler.List)
	alerts.Post("/ack", alertHandler.Acknowledge)

	// Sales (máquina de estados con débito exactamente-una-vez)
	salesGroup := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Put("/:id/status", saleHandler.UpdateStatus)
	salesGroup.Delete("/:id", saleHandler.Delete)

	// Audits (conciliación de conteo físico)
	audits := api.Group("/audits")
	auditHandler := NewAuditHandler(deps.AuditUC)
	audits.Post("/", auditHandler.Reconcile)
	audits.Get("/", auditHandler.History)

	// Forecast (pronóstico y optimización, solo lectura)
	forecastGroup := api.Group("/forecast")
	forecastHandler := NewForecastHandler(deps.ForecastUC)
	forecastGroup.Get("/demand", forecastHandler.Demand)
	forecastGroup.Get("/reorders", forecastHandler.Reorders)
	forecastGroup.Get("/patterns", forecastHandler.Patterns)
}
