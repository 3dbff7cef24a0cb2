package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-alerts/internal/application/dto"
	"github.com/jhoicas/stock-alerts/internal/application/usecase"
	"github.com/jhoicas/stock-alerts/pkg/logger"
)

// ThresholdHandler maneja la configuración de umbrales por empresa.
type ThresholdHandler struct {
	uc  *usecase.ThresholdUseCase
	log *logger.Logger
}

// NewThresholdHandler construye el handler inyectando el caso de uso.
func NewThresholdHandler(uc *usecase.ThresholdUseCase, log *logger.Logger) *ThresholdHandler {
	return &ThresholdHandler{uc: uc, log: log}
}

// GetEffective godoc
// @Summary      Umbrales efectivos de la empresa
// @Description  Tabla por defecto con los overrides propios ya aplicados.
// @Tags         thresholds
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.EffectiveThresholdsDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/thresholds [get]
func (h *ThresholdHandler) GetEffective(c *fiber.Ctx) error {
	out, err := h.uc.GetEffective(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Replace godoc
// @Summary      Reemplazar overrides de umbral
// @Description  Reemplaza el conjunto completo de overrides. Tipos no reconocidos y valores no positivos se descartan en silencio; un cuerpo vacío ({}) borra los overrides.
// @Tags         thresholds
// @Accept       json
// @Produce      json
// @Param        id    path  string          true  "ID de la empresa"
// @Param        body  body  map[string]int  true  "Mapa tipo → umbral"
// @Success      200   {object}  dto.ThresholdUpdateResultDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/thresholds [put]
func (h *ThresholdHandler) Replace(c *fiber.Ctx) error {
	var payload map[string]any
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CONFIG", Message: "configuración de umbrales inválida"})
	}
	out, err := h.uc.ReplaceOverrides(c.Context(), c.Params("id"), payload)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
