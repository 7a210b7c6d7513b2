package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	graphqlgo "github.com/graph-gophers/graphql-go"

	"github.com/jhoicas/proveedores-api/internal/application/dto"
	"github.com/jhoicas/proveedores-api/pkg/logger"
)

// HealthChecker verifica el almacenamiento (pool.Ping en PostgreSQL).
type HealthChecker func(ctx context.Context) error

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName string
	Storage string
	Schema  *graphqlgo.Schema
	Health  HealthChecker
	Log     *logger.Logger
	Metrics *Metrics // opcional; si es nil no se expone /metrics
}

// Router registra middlewares y rutas: banner, health, métricas y el endpoint GraphQL.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	app.Use(RequestLogger(log))
	app.Use(recover.New())
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, " + HeaderRequestID,
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(dto.BannerResponse{Service: deps.AppName, GraphQL: "/graphql"})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		if deps.Health != nil {
			if err := deps.Health(c.UserContext()); err != nil {
				log.Error().Err(err).Msg("health: almacenamiento no disponible")
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
					Code:    "STORAGE_UNAVAILABLE",
					Message: "almacenamiento no disponible",
				})
			}
		}
		return c.JSON(dto.HealthResponse{Status: "ok", Service: deps.AppName, Storage: deps.Storage})
	})

	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics.Handler())
	}

	app.Post("/graphql", GraphQLHandler(deps.Schema))
}
