package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Vansh2812/Tailor/internal/application/dto"
	"github.com/Vansh2812/Tailor/internal/application/usecase"
	"github.com/Vansh2812/Tailor/internal/domain"
)

// RepairWorkHandler maneja el catálogo de servicios de arreglo (protegido).
type RepairWorkHandler struct {
	uc *usecase.RepairWorkUseCase
}

// NewRepairWorkHandler construye el handler.
func NewRepairWorkHandler(uc *usecase.RepairWorkUseCase) *RepairWorkHandler {
	return &RepairWorkHandler{uc: uc}
}

// Create godoc
// @Summary      Crear servicio de arreglo
// @Tags         repairWorks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRepairWorkRequest  true  "name y price"
// @Success      201   {object}  dto.RepairWorkResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/repairWorks [post]
func (h *RepairWorkHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRepairWorkRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido y price no puede ser negativo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar servicios de arreglo
// @Tags         repairWorks
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RepairWorkResponse
// @Router       /api/repairWorks [get]
func (h *RepairWorkHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar servicio de arreglo
// @Tags         repairWorks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del servicio"
// @Param        body  body  dto.UpdateRepairWorkRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.RepairWorkResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/repairWorks/{id} [put]
func (h *RepairWorkHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateRepairWorkRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "price no puede ser negativo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "servicio no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar servicio de arreglo
// @Tags         repairWorks
// @Security     Bearer
// @Param        id  path  string  true  "ID del servicio"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/repairWorks/{id} [delete]
func (h *RepairWorkHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "servicio no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
