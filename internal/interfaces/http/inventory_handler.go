package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
)

// InventoryHandler endpoints de inventario. No reutiliza ResourceHandler:
// cada mutación registra el usuario que la ejecutó en el historial.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler de inventario.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Index godoc
// @Summary Listar inventario
// @Tags inventory
// @Produce json
// @Success 200 {array} dto.InventoryResponse
// @Security BearerAuth
// @Router /api/inventory [get]
func (h *InventoryHandler) Index(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Show godoc
// @Summary Obtener registro de inventario por ID
// @Tags inventory
// @Produce json
// @Param id path string true "ID del registro"
// @Success 200 {object} dto.InventoryResponse
// @Failure 404
// @Security BearerAuth
// @Router /api/inventory/{id} [get]
func (h *InventoryHandler) Show(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return respondNotFound(c)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary Crear registro de inventario
// @Description Alta de existencias de un ítem en una planta. Escribe la
// entrada de historial en la misma transacción.
// @Tags inventory
// @Accept json
// @Produce json
// @Param inventory body dto.CreateInventoryRequest true "Datos del registro"
// @Success 201 {object} dto.InventoryResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Security BearerAuth
// @Router /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary Actualizar registro de inventario
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "ID del registro"
// @Param inventory body dto.UpdateInventoryRequest true "Campos a actualizar"
// @Success 200 {object} dto.InventoryResponse
// @Failure 404
// @Failure 422 {object} dto.ValidationErrorResponse
// @Security BearerAuth
// @Router /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Destroy godoc
// @Summary Eliminar registro de inventario
// @Tags inventory
// @Param id path string true "ID del registro"
// @Success 204
// @Failure 404
// @Security BearerAuth
// @Router /api/inventory/{id} [delete]
func (h *InventoryHandler) Destroy(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusNoContent).Send(nil)
}

// History godoc
// @Summary Historial global de movimientos
// @Tags inventory
// @Produce json
// @Param limit query int false "Máximo de entradas (default 50)"
// @Param offset query int false "Desplazamiento"
// @Success 200 {array} dto.InventoryHistoryResponse
// @Security BearerAuth
// @Router /api/inventory-history [get]
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		page = dto.PageRequest{}
	}
	page.DefaultPage()
	out, err := h.uc.ListHistory(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// HistoryByInventory godoc
// @Summary Historial de un registro de inventario
// @Tags inventory
// @Produce json
// @Param id path string true "ID del registro"
// @Success 200 {array} dto.InventoryHistoryResponse
// @Security BearerAuth
// @Router /api/inventory/{id}/history [get]
func (h *InventoryHandler) HistoryByInventory(c *fiber.Ctx) error {
	out, err := h.uc.ListHistoryByInventory(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
