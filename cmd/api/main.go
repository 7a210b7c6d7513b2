package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/proveedores-api/internal/application/procurement"
	"github.com/jhoicas/proveedores-api/internal/infrastructure/memory"
	"github.com/jhoicas/proveedores-api/internal/infrastructure/postgres"
	gql "github.com/jhoicas/proveedores-api/internal/interfaces/graphql"
	httpRouter "github.com/jhoicas/proveedores-api/internal/interfaces/http"
	"github.com/jhoicas/proveedores-api/pkg/config"
	"github.com/jhoicas/proveedores-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.App.StorageDriver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		txRunner procurement.TxRunner
		health   httpRouter.HealthChecker
	)
	switch cfg.App.StorageDriver {
	case config.StorageDriverMemory:
		txRunner = memory.NewStore()
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		if cfg.DB.AutoMigrate {
			applied, err := postgres.Migrate(ctx, pool)
			if err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
			log.Info().Strs("scripts", applied).Msg("migraciones aplicadas")
		}

		txRunner = postgres.NewTxRunner(pool)
		health = pool.Ping
	}

	supplierUC := procurement.NewSupplierUseCase(txRunner, procurement.SupplierOptions{
		StrictNIT: cfg.Suppliers.StrictNIT,
	})
	purchaseUC := procurement.NewPurchaseUseCase(txRunner)

	schema := gql.NewSchema(
		gql.NewResolver(supplierUC, purchaseUC, log),
		gql.Options{MaxDepth: cfg.GraphQL.MaxDepth},
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName: cfg.App.Name,
		Storage: cfg.App.StorageDriver,
		Schema:  schema,
		Health:  health,
		Log:     log,
		Metrics: httpRouter.NewMetrics(),
	})

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
