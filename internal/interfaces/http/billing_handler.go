package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Vansh2812/Tailor/internal/application/billing"
	"github.com/Vansh2812/Tailor/internal/application/dto"
	"github.com/Vansh2812/Tailor/internal/domain"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// BillingHandler maneja la generación y descarga de facturas (protegido).
type BillingHandler struct {
	uc *billing.BillingUseCase
}

// NewBillingHandler construye el handler.
func NewBillingHandler(uc *billing.BillingUseCase) *BillingHandler {
	return &BillingHandler{uc: uc}
}

// billingError mapea errores del agregador a su status HTTP.
func billingError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func parseBillRequest(c *fiber.Ctx) (dto.BillRequest, error) {
	var in dto.BillRequest
	if err := c.QueryParser(&in); err != nil {
		return in, err
	}
	if in.StoreID == "" || in.StartDate == "" || in.EndDate == "" {
		return in, fmt.Errorf("storeId, startDate y endDate son requeridos")
	}
	return in, nil
}

// GenerateBill godoc
// @Summary      Resumen de facturación por sucursal y rango de fechas
// @Tags         billing
// @Security     Bearer
// @Produce      json
// @Param        storeId    query  string  true  "ID de la sucursal"
// @Param        startDate  query  string  true  "Fecha inicial YYYY-MM-DD"
// @Param        endDate    query  string  true  "Fecha final YYYY-MM-DD"
// @Success      200  {object}  dto.BillSummary
// @Success      204  "Sucursal inexistente"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/billing/report [get]
func (h *BillingHandler) GenerateBill(c *fiber.Ctx) error {
	in, err := parseBillRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.GenerateBill(c.UserContext(), in)
	if err != nil {
		return billingError(c, err)
	}
	if out == nil {
		// Sucursal inexistente: no-op, sin revelar detalle
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Descargar factura en PDF
// @Tags         billing
// @Security     Bearer
// @Produce      application/pdf
// @Param        storeId    query  string  true  "ID de la sucursal"
// @Param        startDate  query  string  true  "Fecha inicial YYYY-MM-DD"
// @Param        endDate    query  string  true  "Fecha final YYYY-MM-DD"
// @Success      200  {file}  binary
// @Success      204  "Sucursal inexistente"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/billing/report/pdf [get]
func (h *BillingHandler) DownloadPDF(c *fiber.Ctx) error {
	in, err := parseBillRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	data, filename, err := h.uc.DownloadBillPDF(c.UserContext(), in)
	if err != nil {
		return billingError(c, err)
	}
	if data == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}

// DownloadExcel godoc
// @Summary      Descargar factura en Excel
// @Tags         billing
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        storeId    query  string  true  "ID de la sucursal"
// @Param        startDate  query  string  true  "Fecha inicial YYYY-MM-DD"
// @Param        endDate    query  string  true  "Fecha final YYYY-MM-DD"
// @Success      200  {file}  binary
// @Success      204  "Sucursal inexistente"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/billing/report/xlsx [get]
func (h *BillingHandler) DownloadExcel(c *fiber.Ctx) error {
	in, err := parseBillRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	data, filename, err := h.uc.DownloadBillExcel(c.UserContext(), in)
	if err != nil {
		return billingError(c, err)
	}
	if data == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}
