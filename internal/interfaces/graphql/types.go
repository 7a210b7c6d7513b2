package graphql

import (
	"context"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/proveedores-api/internal/domain"
	"github.com/jhoicas/proveedores-api/internal/domain/entity"
)

// SupplierResolver adapta entity.Supplier al tipo Supplier.
type SupplierResolver struct {
	s *entity.Supplier
}

func newSupplierResolver(s *entity.Supplier) *SupplierResolver {
	if s == nil {
		return nil
	}
	return &SupplierResolver{s: s}
}

func (r *SupplierResolver) ID() int32        { return int32(r.s.ID) }
func (r *SupplierResolver) Name() string     { return r.s.Name }
func (r *SupplierResolver) TaxID() string    { return r.s.TaxID }
func (r *SupplierResolver) Address() *string { return optional(r.s.Address) }
func (r *SupplierResolver) Phone() *string   { return optional(r.s.Phone) }
func (r *SupplierResolver) Email() *string   { return optional(r.s.Email) }

// PurchaseResolver adapta entity.Purchase (con sus líneas ya cargadas).
type PurchaseResolver struct {
	p    *entity.Purchase
	root *Resolver
}

func (r *PurchaseResolver) ID() int32                 { return int32(r.p.ID) }
func (r *PurchaseResolver) SupplierID() int32         { return int32(r.p.SupplierID) }
func (r *PurchaseResolver) CreatedAt() graphqlgo.Time { return graphqlgo.Time{Time: r.p.CreatedAt} }
func (r *PurchaseResolver) Total() float64            { return money(r.p.Total) }
func (r *PurchaseResolver) Status() string            { return r.p.Status }

// Supplier resuelve el proveedor dueño; si ya no existe o falla la lectura devuelve null.
func (r *PurchaseResolver) Supplier(ctx context.Context) *SupplierResolver {
	s, err := r.root.suppliers.Get(ctx, r.p.SupplierID)
	if err != nil {
		if domain.CodeOf(err) == domain.CodeInternal {
			r.root.logFailure(ctx, err, "purchase.supplier")
		}
		return nil
	}
	return newSupplierResolver(s)
}

func (r *PurchaseResolver) LineItems() []*LineItemResolver {
	out := make([]*LineItemResolver, 0, len(r.p.LineItems))
	for _, it := range r.p.LineItems {
		out = append(out, &LineItemResolver{it: it})
	}
	return out
}

// LineItemResolver adapta entity.LineItem.
type LineItemResolver struct {
	it *entity.LineItem
}

func (r *LineItemResolver) ID() int32          { return int32(r.it.ID) }
func (r *LineItemResolver) PurchaseID() int32  { return int32(r.it.PurchaseID) }
func (r *LineItemResolver) ProductID() int32   { return int32(r.it.ProductID) }
func (r *LineItemResolver) Quantity() int32    { return int32(r.it.Quantity) }
func (r *LineItemResolver) UnitPrice() float64 { return money(r.it.UnitPrice) }
func (r *LineItemResolver) Subtotal() float64  { return money(r.it.Subtotal) }

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
