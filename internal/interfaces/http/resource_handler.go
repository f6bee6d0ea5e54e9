package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
)

// CrudUseCase contrato que todo caso de uso de recurso CRUD expone al
// handler genérico. Get devuelve (nil, nil) si el registro no existe;
// Update y Delete devuelven domain.ErrNotFound.
type CrudUseCase[C any, U any, R any] interface {
	List(ctx context.Context) ([]*R, error)
	Get(ctx context.Context, id string) (*R, error)
	Create(ctx context.Context, in C) (*R, error)
	Update(ctx context.Context, id string, in U) (*R, error)
	Delete(ctx context.Context, id string) error
}

// ResourceHandler implementa el ciclo de vida CRUD una sola vez para todos
// los recursos: index/show/create/update/destroy con el mismo contrato de
// códigos de estado (200/201/204/404/422/500). Cada operación corta en el
// primer error; respondDomainError es el único punto de mapeo.
type ResourceHandler[C any, U any, R any] struct {
	uc CrudUseCase[C, U, R]
}

// NewResourceHandler construye el handler genérico sobre un caso de uso.
func NewResourceHandler[C any, U any, R any](uc CrudUseCase[C, U, R]) *ResourceHandler[C, U, R] {
	return &ResourceHandler[C, U, R]{uc: uc}
}

// Index responde 200 con el listado completo del recurso.
func (h *ResourceHandler[C, U, R]) Index(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Show responde 200 con el registro o 404 (cuerpo vacío) si no existe.
func (h *ResourceHandler[C, U, R]) Show(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return respondNotFound(c)
	}
	return c.JSON(out)
}

// Create responde 201 con el registro creado; 422 si la validación falla.
func (h *ResourceHandler[C, U, R]) Create(c *fiber.Ctx) error {
	var in C
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update aplica el merge superficial y responde 200 con el registro
// actualizado; 404 si no existe, 422 si la validación falla.
func (h *ResourceHandler[C, U, R]) Update(c *fiber.Ctx) error {
	var in U
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Destroy responde 204 sin cuerpo; 404 si el registro no existe.
func (h *ResourceHandler[C, U, R]) Destroy(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusNoContent).Send(nil)
}

// crudRoutes las cinco operaciones del patrón, como handlers Fiber.
type crudRoutes interface {
	Index(c *fiber.Ctx) error
	Show(c *fiber.Ctx) error
	Create(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	Destroy(c *fiber.Ctx) error
}

// MountCrud registra la tabla de rutas estándar de un recurso con sus guards:
// read protege GET /, GET /:id; write protege POST, PUT, PATCH y DELETE.
func MountCrud(r fiber.Router, h crudRoutes, read []fiber.Handler, write []fiber.Handler) {
	r.Get("/", withGuards(read, h.Index)...)
	r.Get("/:id", withGuards(read, h.Show)...)
	r.Post("/", withGuards(write, h.Create)...)
	r.Put("/:id", withGuards(write, h.Update)...)
	r.Patch("/:id", withGuards(write, h.Update)...)
	r.Delete("/:id", withGuards(write, h.Destroy)...)
}

func withGuards(guards []fiber.Handler, handler fiber.Handler) []fiber.Handler {
	out := make([]fiber.Handler, 0, len(guards)+1)
	out = append(out, guards...)
	return append(out, handler)
}
