package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gestor-irrigacion/internal/application/dto"
	"github.com/jhoicas/gestor-irrigacion/internal/application/purchasing"
)

// ThresholdHandler administra los topes de contratación.
type ThresholdHandler struct {
	uc *purchasing.ThresholdUseCase
}

// NewThresholdHandler construye el handler.
func NewThresholdHandler(uc *purchasing.ThresholdUseCase) *ThresholdHandler {
	return &ThresholdHandler{uc: uc}
}

// List godoc
// @Summary      Listar topes de contratación (monto ascendente)
// @Tags         thresholds
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.ThresholdResponse
// @Router       /api/thresholds [get]
func (h *ThresholdHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListThresholds(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar el monto máximo de un tope (solo admin)
// @Tags         thresholds
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                         true  "ID del tope"
// @Param        body  body  dto.UpdateThresholdRequest  true  "ceiling_amount"
// @Success      200   {object}  dto.ThresholdResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/thresholds/{id} [put]
func (h *ThresholdHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.UpdateThresholdRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateThreshold(c.Context(), id, in.CeilingAmount)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
