package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain/role"
)

// UserHandler expone los endpoints de usuarios. No reutiliza ResourceHandler:
// los usuarios requieren el rol del llamador en create/update/destroy y el
// endpoint extra de cambio de contraseña.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Index godoc
// @Summary Listar usuarios activos
// @Tags users
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Security BearerAuth
// @Router /api/users [get]
func (h *UserHandler) Index(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Show godoc
// @Summary Obtener usuario por ID
// @Tags users
// @Produce json
// @Param id path string true "ID del usuario"
// @Success 200 {object} dto.UserResponse
// @Failure 404
// @Security BearerAuth
// @Router /api/users/{id} [get]
func (h *UserHandler) Show(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return respondNotFound(c)
	}
	return c.JSON(out)
}

// Me godoc
// @Summary Obtener el usuario autenticado
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Security BearerAuth
// @Router /api/users/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetUserID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return respondNotFound(c)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary Registrar usuario
// @Description Registro público (rol user) o creación por un administrador.
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "Datos del usuario"
// @Success 201 {object} dto.UserResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Router /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), role.Role(GetRole(c)), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary Actualizar usuario
// @Description Merge superficial; id y password del payload se ignoran. El
// cambio de rol se permite según los roles del llamador y del afectado.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "ID del usuario"
// @Param user body dto.UpdateUserRequest true "Campos a actualizar"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404
// @Failure 422 {object} dto.ValidationErrorResponse
// @Security BearerAuth
// @Router /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), role.Role(GetRole(c)), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Destroy godoc
// @Summary Desactivar usuario
// @Description Soft delete: marca active=false. El registro sigue consultable
// por id pero desaparece del índice.
// @Tags users
// @Param id path string true "ID del usuario"
// @Success 204
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404
// @Security BearerAuth
// @Router /api/users/{id} [delete]
func (h *UserHandler) Destroy(c *fiber.Ctx) error {
	if err := h.uc.Destroy(c.Context(), role.Role(GetRole(c)), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusNoContent).Send(nil)
}

// ChangePassword godoc
// @Summary Cambiar contraseña
// @Description Verifica la contraseña anterior antes de persistir la nueva.
// @Tags users
// @Accept json
// @Param id path string true "ID del usuario"
// @Param body body dto.ChangePasswordRequest true "Contraseñas"
// @Success 204
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404
// @Failure 422 {object} dto.ValidationErrorResponse
// @Security BearerAuth
// @Router /api/users/{id}/password [put]
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ChangePassword(c.Context(), c.Params("id"), in); err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusNoContent).Send(nil)
}
