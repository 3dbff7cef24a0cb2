package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-alerts/internal/application/alerts"
	"github.com/jhoicas/stock-alerts/internal/domain"
	"github.com/jhoicas/stock-alerts/internal/domain/repository"
	"github.com/jhoicas/stock-alerts/internal/infrastructure/excel"
	"github.com/jhoicas/stock-alerts/internal/infrastructure/pdf"
	"github.com/jhoicas/stock-alerts/pkg/logger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AlertHandler expone el cómputo de alertas de stock bajo en JSON, xlsx y PDF.
type AlertHandler struct {
	uc          *alerts.LowStockUseCase
	companyRepo repository.CompanyRepository
	exporter    *excel.AlertExporter
	reports     *pdf.AlertReportGenerator
	log         *logger.Logger
}

// NewAlertHandler construye el handler inyectando el caso de uso y los
// generadores de exportación.
func NewAlertHandler(
	uc *alerts.LowStockUseCase,
	companyRepo repository.CompanyRepository,
	exporter *excel.AlertExporter,
	reports *pdf.AlertReportGenerator,
	log *logger.Logger,
) *AlertHandler {
	return &AlertHandler{
		uc:          uc,
		companyRepo: companyRepo,
		exporter:    exporter,
		reports:     reports,
		log:         log,
	}
}

func (h *AlertHandler) computeInput(c *fiber.Ctx) alerts.ComputeInput {
	return alerts.ComputeInput{
		CompanyID:   c.Params("id"),
		WarehouseID: c.Query("warehouse_id"),
		ProductType: c.Query("product_type"),
		Limit:       c.QueryInt("limit", 0),
	}
}

// LowStock godoc
// @Summary      Alertas de stock bajo
// @Description  Productos con stock igual o inferior al umbral de su tipo y con ventas en los últimos 30 días, ordenados por urgencia.
// @Tags         alerts
// @Produce      json
// @Param        id            path   string  true   "ID de la empresa"
// @Param        warehouse_id  query  string  false  "Limitar a una bodega"
// @Param        product_type  query  string  false  "Limitar a un tipo de producto"
// @Param        limit         query  int     false  "Máximo de alertas"  default(100)
// @Success      200  {object}  dto.LowStockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/alerts/low-stock [get]
func (h *AlertHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.Compute(c.Context(), h.computeInput(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// ExportXLSX godoc
// @Summary      Exportar alertas a xlsx
// @Tags         alerts
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id            path   string  true   "ID de la empresa"
// @Param        warehouse_id  query  string  false  "Limitar a una bodega"
// @Param        product_type  query  string  false  "Limitar a un tipo de producto"
// @Param        limit         query  int     false  "Máximo de alertas"  default(100)
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/alerts/low-stock/export.xlsx [get]
func (h *AlertHandler) ExportXLSX(c *fiber.Ctx) error {
	out, err := h.uc.Compute(c.Context(), h.computeInput(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	data, err := h.exporter.Export(out)
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="alertas_stock.xlsx"`)
	return c.Send(data)
}

// ReportPDF godoc
// @Summary      Reporte PDF de alertas
// @Tags         alerts
// @Produce      application/pdf
// @Param        id            path   string  true   "ID de la empresa"
// @Param        warehouse_id  query  string  false  "Limitar a una bodega"
// @Param        product_type  query  string  false  "Limitar a un tipo de producto"
// @Param        limit         query  int     false  "Máximo de alertas"  default(100)
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/alerts/low-stock/report.pdf [get]
func (h *AlertHandler) ReportPDF(c *fiber.Ctx) error {
	out, err := h.uc.Compute(c.Context(), h.computeInput(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	company, err := h.companyRepo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	if company == nil {
		return respondError(c, h.log, domain.ErrNotFound)
	}
	data, err := h.reports.GenerateAlertReport(company, out)
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte_stock_bajo.pdf"`)
	return c.Send(data)
}
