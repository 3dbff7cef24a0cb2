// Package http expone la API REST sobre Fiber.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-alerts/internal/application/alerts"
	"github.com/jhoicas/stock-alerts/internal/application/usecase"
	"github.com/jhoicas/stock-alerts/internal/domain/repository"
	"github.com/jhoicas/stock-alerts/internal/infrastructure/excel"
	"github.com/jhoicas/stock-alerts/internal/infrastructure/pdf"
	"github.com/jhoicas/stock-alerts/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC   *usecase.CompanyUseCase
	WarehouseUC *usecase.WarehouseUseCase
	SupplierUC  *usecase.SupplierUseCase
	ProductUC   *usecase.ProductUseCase
	SalesUC     *usecase.SalesUseCase
	ThresholdUC *usecase.ThresholdUseCase
	LowStockUC  *alerts.LowStockUseCase
	CompanyRepo repository.CompanyRepository
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.Log)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, deps.Log)
	companies.Post("/:id/warehouses", warehouseHandler.Create)
	companies.Get("/:id/warehouses", warehouseHandler.List)

	supplierHandler := NewSupplierHandler(deps.SupplierUC, deps.Log)
	companies.Post("/:id/suppliers", supplierHandler.Create)
	companies.Get("/:id/suppliers", supplierHandler.List)

	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	companies.Post("/:id/products", productHandler.Create)
	companies.Get("/:id/products", productHandler.List)
	api.Get("/products/:id", productHandler.GetByID)

	salesHandler := NewSalesHandler(deps.SalesUC, deps.Log)
	companies.Post("/:id/sales", salesHandler.RecordSale)
	companies.Put("/:id/inventory", salesHandler.UpsertInventory)

	thresholdHandler := NewThresholdHandler(deps.ThresholdUC, deps.Log)
	companies.Get("/:id/thresholds", thresholdHandler.GetEffective)
	companies.Put("/:id/thresholds", thresholdHandler.Replace)

	alertHandler := NewAlertHandler(
		deps.LowStockUC, deps.CompanyRepo,
		excel.NewAlertExporter(), pdf.NewAlertReportGenerator(),
		deps.Log,
	)
	companies.Get("/:id/alerts/low-stock", alertHandler.LowStock)
	companies.Get("/:id/alerts/low-stock/export.xlsx", alertHandler.ExportXLSX)
	companies.Get("/:id/alerts/low-stock/report.pdf", alertHandler.ReportPDF)
}
