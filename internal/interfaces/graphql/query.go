package graphql

import (
	"context"
)

type idArgs struct {
	ID int32
}

// Supplier consulta supplier(id).
func (r *Resolver) Supplier(ctx context.Context, args idArgs) *SupplierResponse {
	return r.supplierResponse(ctx, "supplier", func() (*SupplierResolver, error) {
		s, err := r.suppliers.Get(ctx, int64(args.ID))
		if err != nil {
			return nil, err
		}
		return newSupplierResolver(s), nil
	})
}

// Suppliers consulta suppliers.
func (r *Resolver) Suppliers(ctx context.Context) ([]*SupplierResolver, error) {
	list, err := r.suppliers.List(ctx)
	if err != nil {
		return nil, r.listFailure(ctx, err, "suppliers")
	}
	out := make([]*SupplierResolver, 0, len(list))
	for _, s := range list {
		out = append(out, newSupplierResolver(s))
	}
	return out, nil
}

// Purchase consulta purchase(id) con sus líneas.
func (r *Resolver) Purchase(ctx context.Context, args idArgs) *PurchaseResponse {
	return r.purchaseResponse(ctx, "purchase", func() (*PurchaseResolver, error) {
		p, err := r.purchases.Get(ctx, int64(args.ID))
		if err != nil {
			return nil, err
		}
		return r.purchaseResolver(p), nil
	})
}

// Purchases consulta purchases.
func (r *Resolver) Purchases(ctx context.Context) ([]*PurchaseResolver, error) {
	list, err := r.purchases.List(ctx)
	if err != nil {
		return nil, r.listFailure(ctx, err, "purchases")
	}
	out := make([]*PurchaseResolver, 0, len(list))
	for _, p := range list {
		out = append(out, r.purchaseResolver(p))
	}
	return out, nil
}
