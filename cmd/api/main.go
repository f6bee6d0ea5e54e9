package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/almacen-api/internal/application/auth"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/almacen-api/internal/interfaces/http"
	"github.com/tu-usuario/almacen-api/internal/interfaces/ws"
	"github.com/tu-usuario/almacen-api/pkg/config"
	"github.com/tu-usuario/almacen-api/pkg/logger"
	"github.com/tu-usuario/almacen-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	departmentRepo := postgres.NewDepartmentRepository(pool)
	divisionRepo := postgres.NewDivisionRepository(pool)
	plantRepo := postgres.NewPlantRepository(pool)
	storageLevelRepo := postgres.NewStorageLevelRepository(pool)
	measurementUnitRepo := postgres.NewMeasurementUnitRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	historyRepo := postgres.NewInventoryHistoryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Canal de tiempo real: el hub implementa realtime.Notifier y difunde
	// "<entidad>:save" / "<entidad>:remove" a los clientes conectados.
	hub := ws.NewHub(log)
	hub.Register(ws.Feature{Name: "users"})
	hub.Register(ws.Feature{Name: "items"})
	hub.Register(ws.Feature{Name: "inventory"})

	userUC := usecase.NewUserUseCase(userRepo, hub)
	departmentUC := usecase.NewDepartmentUseCase(departmentRepo)
	divisionUC := usecase.NewDivisionUseCase(divisionRepo, departmentRepo)
	plantUC := usecase.NewPlantUseCase(plantRepo, divisionRepo)
	storageLevelUC := usecase.NewStorageLevelUseCase(storageLevelRepo)
	measurementUnitUC := usecase.NewMeasurementUnitUseCase(measurementUnitRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	itemUC := usecase.NewItemUseCase(itemRepo, storageLevelRepo, hub)
	inventoryUC := inventory.NewUseCase(txRunner, inventoryRepo, historyRepo, itemRepo, plantRepo, hub)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	m := metrics.New(cfg.App.Name)
	app.Use(m.Middleware())
	app.Get("/metrics", metrics.Handler())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacén API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	app.Use("/ws", ws.UpgradeRequired)
	app.Get("/ws", hub.Handler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:            authUC,
		UserUC:            userUC,
		DepartmentUC:      departmentUC,
		DivisionUC:        divisionUC,
		PlantUC:           plantUC,
		StorageLevelUC:    storageLevelUC,
		MeasurementUnitUC: measurementUnitUC,
		SupplierUC:        supplierUC,
		ItemUC:            itemUC,
		InventoryUC:       inventoryUC,
		JWTSecret:         cfg.JWT.Secret,
	})

	// SPA: estáticos del cliente y fallback a index.html (después de la API,
	// para que sólo capture rutas no resueltas).
	httpRouter.SPAFallback(app, cfg.Client.Dir, cfg.Client.IndexPath())

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
