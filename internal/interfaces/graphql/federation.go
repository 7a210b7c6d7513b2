package graphql

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/jhoicas/proveedores-api/internal/domain/entity"
)

const supplierTypename = "Supplier"

// Any es el escalar _Any: una representación {__typename, ...campos @key} enviada por el gateway.
type Any struct {
	Typename string
	ID       int64
	hasID    bool
}

// ImplementsGraphQLType enlaza el tipo Go con el escalar _Any.
func (Any) ImplementsGraphQLType(name string) bool { return name == "_Any" }

// UnmarshalGraphQL acepta el objeto de representación tal como llega en variables o literal.
func (a *Any) UnmarshalGraphQL(input interface{}) error {
	m, ok := input.(map[string]interface{})
	if !ok {
		return fmt.Errorf("_Any: se esperaba un objeto, llegó %T", input)
	}
	typename, _ := m["__typename"].(string)
	if typename == "" {
		return fmt.Errorf("_Any: falta __typename")
	}
	a.Typename = typename
	if raw, present := m["id"]; present {
		id, err := representationID(raw)
		if err != nil {
			return err
		}
		a.ID, a.hasID = id, true
	}
	return nil
}

// representationID admite el id como número o como string (los gateways envían ambos).
func representationID(v interface{}) (int64, error) {
	switch id := v.(type) {
	case int32:
		return int64(id), nil
	case int64:
		return id, nil
	case int:
		return int64(id), nil
	case float64:
		if id != math.Trunc(id) {
			return 0, fmt.Errorf("_Any: id no entero %v", id)
		}
		return int64(id), nil
	case json.Number:
		return id.Int64()
	case string:
		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("_Any: id inválido %q", id)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("_Any: tipo de id no soportado %T", v)
	}
}

// ServiceResolver es el tipo _Service.
type ServiceResolver struct{}

func (ServiceResolver) SDL() string { return SubgraphSDL() }

// EntityResolver es la unión _Entity (solo Supplier).
type EntityResolver struct {
	supplier *SupplierResolver
}

func (e *EntityResolver) ToSupplier() (*SupplierResolver, bool) {
	return e.supplier, e.supplier != nil
}

// Service responde _service { sdl }.
func (r *Resolver) Service() ServiceResolver { return ServiceResolver{} }

// Entities responde _entities. El stub de Supplier solo lleva el id: el gateway pide
// los demás campos en una consulta posterior. No se consulta almacenamiento.
func (r *Resolver) Entities(args struct{ Representations []Any }) []*EntityResolver {
	out := make([]*EntityResolver, 0, len(args.Representations))
	for _, rep := range args.Representations {
		if rep.Typename != supplierTypename || !rep.hasID {
			out = append(out, nil)
			continue
		}
		out = append(out, &EntityResolver{supplier: newSupplierResolver(&entity.Supplier{ID: rep.ID})})
	}
	return out
}
