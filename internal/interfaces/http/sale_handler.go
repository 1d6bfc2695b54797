package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/sales"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/rs/zerolog/log"
)

// SaleHandler maneja las peticiones HTTP para el flujo de ventas (protegido).
type SaleHandler struct {
	uc *sales.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create godoc
// @Summary      Crear venta (transaccional: valida stock y descuenta por línea)
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Fecha y detalles de la venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateSale(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sale_date (YYYY-MM-DD) y al menos un detalle válido son requeridos"})
		case errors.Is(err, domain.ErrProductNotFound):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: err.Error()})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por ID con sus detalles
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        saleId  path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{saleId} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("saleId"))
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ventas con sus detalles
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de la venta por código
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        saleId  path  string  true  "ID de la venta"
// @Param        body    body  dto.UpdateSaleStatusRequest  true  "Código de estado destino"
// @Success      200  {object}  dto.SaleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/sales/{saleId}/status [put]
func (h *SaleHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateSaleStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), c.Params("saleId"), in.StatusCode)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status_code es requerido"})
		case errors.Is(err, domain.ErrStatusNotFound):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "STATUS_NOT_FOUND", Message: err.Error()})
		}
		return internalError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar venta (los detalles caen en cascada)
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        saleId  path  string  true  "ID de la venta"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{saleId} [delete]
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	err := h.uc.Delete(c.UserContext(), c.Params("saleId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "venta eliminada"})
}

// ReceiptPDF godoc
// @Summary      Recibo PDF de la venta
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        saleId  path  string  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{saleId}/pdf [get]
func (h *SaleHandler) ReceiptPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.ReceiptPDF(c.UserContext(), c.Params("saleId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="recibo.pdf"`)
	return c.Send(pdfBytes)
}

// internalError registra el error con contexto y devuelve un 500 genérico
// sin filtrar detalles internos al cliente.
func internalError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
}
