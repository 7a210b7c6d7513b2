package graphql_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gql "github.com/jhoicas/proveedores-api/internal/interfaces/graphql"
)

func TestService_SDLFederado(t *testing.T) {
	schema, _ := newTestSchema(t)

	var out struct {
		Service struct {
			SDL string `json:"sdl"`
		} `json:"_service"`
	}
	exec(t, schema, `{ _service { sdl } }`, nil, &out)

	sdl := out.Service.SDL
	assert.Equal(t, gql.SubgraphSDL(), sdl)
	assert.Contains(t, sdl, `@link(url: "https://specs.apollo.dev/federation/v2.0"`)
	assert.Contains(t, sdl, `type Supplier @key(fields: "id")`)
	assert.Contains(t, sdl, "createPurchase(input: PurchaseInput!): PurchaseResponse!")
	assert.NotContains(t, sdl, "_entities")
	assert.NotContains(t, sdl, "_service")
	assert.NotContains(t, sdl, "scalar _Any")
}

func TestEntities_StubSinAlmacenamiento(t *testing.T) {
	schema, store := newTestSchema(t)

	var out struct {
		Entities []*struct {
			Typename string `json:"__typename"`
			ID       int    `json:"id"`
		} `json:"_entities"`
	}
	exec(t, schema, `query($reps: [_Any!]!) {
  _entities(representations: $reps) { __typename ... on Supplier { id } }
}`, map[string]interface{}{
		"reps": []interface{}{
			map[string]interface{}{"__typename": "Supplier", "id": 77},
			map[string]interface{}{"__typename": "Producto", "id": 1},
			map[string]interface{}{"__typename": "Supplier", "id": "12"},
		},
	}, &out)

	require.Len(t, out.Entities, 3)
	require.NotNil(t, out.Entities[0])
	assert.Equal(t, "Supplier", out.Entities[0].Typename)
	assert.Equal(t, 77, out.Entities[0].ID, "el stub existe aunque el proveedor no esté almacenado")
	assert.Nil(t, out.Entities[1], "typename desconocido resuelve a null")
	require.NotNil(t, out.Entities[2])
	assert.Equal(t, 12, out.Entities[2].ID)

	suppliers, _, _ := store.Counts()
	assert.Zero(t, suppliers)
}

func TestSubgraphSDL_SinBloqueSchema(t *testing.T) {
	sdl := gql.SubgraphSDL()

	assert.NotContains(t, sdl, "schema {")
	assert.NotContains(t, sdl, "type _Service")
	assert.Contains(t, sdl, "type Query {")
	assert.Contains(t, sdl, "suppliers: [Supplier!]!")
}
