// Package graphql expone los casos de uso de proveedores y compras como subgrafo GraphQL federado.
package graphql

import (
	_ "embed"
	"strings"

	graphqlgo "github.com/graph-gophers/graphql-go"
)

//go:embed schema.graphql
var schemaSDL string

const federationLink = `extend schema @link(url: "https://specs.apollo.dev/federation/v2.0", import: ["@key"])`

// Options límites del motor.
type Options struct {
	MaxDepth int
}

// NewSchema parsea el esquema y lo enlaza con el resolver raíz. Falla solo si el esquema
// y los resolvers no coinciden, por eso usa MustParseSchema.
func NewSchema(root *Resolver, opts Options) *graphqlgo.Schema {
	schemaOpts := []graphqlgo.SchemaOpt{graphqlgo.UseFieldResolvers()}
	if opts.MaxDepth > 0 {
		schemaOpts = append(schemaOpts, graphqlgo.MaxDepth(opts.MaxDepth))
	}
	return graphqlgo.MustParseSchema(schemaSDL, root, schemaOpts...)
}

// SubgraphSDL devuelve el SDL que se publica en _service: los tipos propios con la
// cabecera @link de Federation 2 y sin los campos/tipos del protocolo de federación.
func SubgraphSDL() string {
	var b strings.Builder
	b.WriteString(federationLink)
	b.WriteString("\n")

	skipBlock := false
	for _, line := range strings.Split(schemaSDL, "\n") {
		trimmed := strings.TrimSpace(line)
		if skipBlock {
			if trimmed == "}" {
				skipBlock = false
			}
			continue
		}
		switch {
		case trimmed == "schema {", strings.HasPrefix(trimmed, "type _Service"):
			skipBlock = true
			continue
		case strings.HasPrefix(trimmed, "directive @key"),
			strings.HasPrefix(trimmed, "scalar _Any"),
			strings.HasPrefix(trimmed, "union _Entity"),
			strings.HasPrefix(trimmed, "_service:"),
			strings.HasPrefix(trimmed, "_entities("):
			continue
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String()) + "\n"
}
