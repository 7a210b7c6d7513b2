package http

import (
	"github.com/gofiber/fiber/v2"
	graphqlgo "github.com/graph-gophers/graphql-go"

	"github.com/jhoicas/proveedores-api/internal/application/dto"
)

// graphQLRequest cuerpo estándar de una petición GraphQL sobre HTTP.
type graphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// GraphQLHandler ejecuta el esquema con el contexto de la petición (lleva el request id).
// Los fallos de dominio viajan dentro de data; el transporte responde 200.
func GraphQLHandler(schema *graphqlgo.Schema) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req graphQLRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "BAD_REQUEST",
				Message: "cuerpo GraphQL inválido",
			})
		}
		resp := schema.Exec(c.UserContext(), req.Query, req.OperationName, req.Variables)
		return c.JSON(resp)
	}
}
