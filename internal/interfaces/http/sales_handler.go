package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-alerts/internal/application/dto"
	"github.com/jhoicas/stock-alerts/internal/application/usecase"
	"github.com/jhoicas/stock-alerts/pkg/logger"
)

// SalesHandler maneja el registro de ventas y la actualización de inventario.
type SalesHandler struct {
	uc  *usecase.SalesUseCase
	log *logger.Logger
}

// NewSalesHandler construye el handler inyectando el caso de uso.
func NewSalesHandler(uc *usecase.SalesUseCase, log *logger.Logger) *SalesHandler {
	return &SalesHandler{uc: uc, log: log}
}

// RecordSale godoc
// @Summary      Registrar evento de venta
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la empresa"
// @Param        body  body  dto.RecordSaleRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/sales [post]
func (h *SalesHandler) RecordSale(c *fiber.Ctx) error {
	companyID, err := companyParam(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RecordSale(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpsertInventory godoc
// @Summary      Fijar stock de un producto en una bodega
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la empresa"
// @Param        body  body  dto.UpsertInventoryRequest  true  "Stock a fijar"
// @Success      200   {object}  dto.InventoryRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/inventory [put]
func (h *SalesHandler) UpsertInventory(c *fiber.Ctx) error {
	companyID, err := companyParam(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	var in dto.UpsertInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpsertInventory(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
