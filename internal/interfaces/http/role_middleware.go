package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain/role"
)

// RequireRole exige que el rol del token alcance como mínimo el indicado
// (orden user < admin < superadmin). Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 401 si no hay rol en el contexto (token sin claim de rol).
//   - 403 si el rol no alcanza el mínimo; el handler nunca se ejecuta.
func RequireRole(min role.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		r := role.Role(GetRole(c))
		if r == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "el token no incluye rol",
			})
		}
		if !r.AtLeast(min) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "se requiere rol " + string(min) + " o superior",
			})
		}
		return c.Next()
	}
}
