package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/auth"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain/role"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC            *auth.AuthUseCase
	UserUC            *usecase.UserUseCase
	DepartmentUC      *usecase.DepartmentUseCase
	DivisionUC        *usecase.DivisionUseCase
	PlantUC           *usecase.PlantUseCase
	StorageLevelUC    *usecase.StorageLevelUseCase
	MeasurementUnitUC *usecase.MeasurementUnitUseCase
	SupplierUC        *usecase.SupplierUseCase
	ItemUC            *usecase.ItemUseCase
	InventoryUC       *inventory.UseCase
	JWTSecret         string
}

// Router registra las rutas de la API.
//
// Tabla de guards: toda lectura requiere autenticación; las escrituras de
// catálogos organizativos (departamentos, divisiones, plantas, proveedores,
// unidades de medida) requieren admin, y las de almacén (niveles de
// almacenamiento, ítems, inventario) requieren superadmin. El alta de
// usuarios es pública (registro), con rol del llamador opcional.
func Router(app *fiber.App, deps RouterDeps) {
	authRequired := AuthMiddleware(deps.JWTSecret)
	authOptional := OptionalAuthMiddleware(deps.JWTSecret)
	read := []fiber.Handler{authRequired}
	adminWrite := []fiber.Handler{authRequired, RequireRole(role.Admin)}
	superadminWrite := []fiber.Handler{authRequired, RequireRole(role.Superadmin)}

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Usuarios: el registro es público; el resto de mutaciones requiere admin.
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", authRequired, RequireRole(role.Admin), userHandler.Index)
	users.Get("/me", authRequired, userHandler.Me)
	users.Get("/:id", authRequired, userHandler.Show)
	users.Post("/", authOptional, userHandler.Create)
	users.Put("/:id", authRequired, RequireRole(role.Admin), userHandler.Update)
	users.Patch("/:id", authRequired, RequireRole(role.Admin), userHandler.Update)
	users.Delete("/:id", authRequired, RequireRole(role.Admin), userHandler.Destroy)
	users.Put("/:id/password", authRequired, userHandler.ChangePassword)

	// Catálogos organizativos (escritura: admin)
	MountCrud(api.Group("/departments"),
		NewResourceHandler[dto.CreateDepartmentRequest, dto.UpdateDepartmentRequest, dto.DepartmentResponse](deps.DepartmentUC),
		read, adminWrite)
	MountCrud(api.Group("/divisions"),
		NewResourceHandler[dto.CreateDivisionRequest, dto.UpdateDivisionRequest, dto.DivisionResponse](deps.DivisionUC),
		read, adminWrite)
	MountCrud(api.Group("/plants"),
		NewResourceHandler[dto.CreatePlantRequest, dto.UpdatePlantRequest, dto.PlantResponse](deps.PlantUC),
		read, adminWrite)
	MountCrud(api.Group("/suppliers"),
		NewResourceHandler[dto.CreateSupplierRequest, dto.UpdateSupplierRequest, dto.SupplierResponse](deps.SupplierUC),
		read, adminWrite)
	MountCrud(api.Group("/measurement-units"),
		NewResourceHandler[dto.CreateMeasurementUnitRequest, dto.UpdateMeasurementUnitRequest, dto.MeasurementUnitResponse](deps.MeasurementUnitUC),
		read, adminWrite)

	// Catálogos de almacén (escritura: superadmin)
	MountCrud(api.Group("/storage-levels"),
		NewResourceHandler[dto.CreateStorageLevelRequest, dto.UpdateStorageLevelRequest, dto.StorageLevelResponse](deps.StorageLevelUC),
		read, superadminWrite)
	MountCrud(api.Group("/items"),
		NewResourceHandler[dto.CreateItemRequest, dto.UpdateItemRequest, dto.ItemResponse](deps.ItemUC),
		read, superadminWrite)

	// Listados anidados de la jerarquía
	api.Get("/departments/:id/divisions", authRequired, func(c *fiber.Ctx) error {
		out, err := deps.DivisionUC.ListByDepartment(c.Context(), c.Params("id"))
		if err != nil {
			return respondDomainError(c, err)
		}
		return c.JSON(out)
	})
	api.Get("/departments/:id/plants", authRequired, func(c *fiber.Ctx) error {
		out, err := deps.PlantUC.ListByDepartment(c.Context(), c.Params("id"))
		if err != nil {
			return respondDomainError(c, err)
		}
		return c.JSON(out)
	})
	api.Get("/divisions/:id/plants", authRequired, func(c *fiber.Ctx) error {
		out, err := deps.PlantUC.ListByDivision(c.Context(), c.Params("id"))
		if err != nil {
			return respondDomainError(c, err)
		}
		return c.JSON(out)
	})
	api.Get("/storage-levels/:id/items", authRequired, func(c *fiber.Ctx) error {
		out, err := deps.ItemUC.ListByStorageLevel(c.Context(), c.Params("id"))
		if err != nil {
			return respondDomainError(c, err)
		}
		return c.JSON(out)
	})

	// Inventario (escritura: superadmin) e historial de movimientos
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv := api.Group("/inventory")
	inv.Get("/", authRequired, inventoryHandler.Index)
	inv.Get("/:id", authRequired, inventoryHandler.Show)
	inv.Get("/:id/history", authRequired, inventoryHandler.HistoryByInventory)
	inv.Post("/", authRequired, RequireRole(role.Superadmin), inventoryHandler.Create)
	inv.Put("/:id", authRequired, RequireRole(role.Superadmin), inventoryHandler.Update)
	inv.Patch("/:id", authRequired, RequireRole(role.Superadmin), inventoryHandler.Update)
	inv.Delete("/:id", authRequired, RequireRole(role.Superadmin), inventoryHandler.Destroy)
	api.Get("/inventory-history", authRequired, inventoryHandler.History)
}
