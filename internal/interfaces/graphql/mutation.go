package graphql

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/proveedores-api/internal/application/dto"
)

type supplierInput struct {
	Name    string
	TaxID   string
	Address *string
	Phone   *string
	Email   *string
}

type supplierUpdateInput struct {
	Name    *string
	Address *string
	Phone   *string
	Email   *string
}

type lineItemInput struct {
	ProductID int32
	Quantity  int32
	UnitPrice float64
}

type purchaseInput struct {
	SupplierID int32
	LineItems  []lineItemInput
}

type purchaseUpdateInput struct {
	Status string
}

// CreateSupplier mutación createSupplier(input).
func (r *Resolver) CreateSupplier(ctx context.Context, args struct{ Input supplierInput }) *SupplierResponse {
	in := args.Input
	return r.supplierResponse(ctx, "createSupplier", func() (*SupplierResolver, error) {
		s, err := r.suppliers.Create(ctx, dto.CreateSupplierRequest{
			Name:    in.Name,
			TaxID:   in.TaxID,
			Address: deref(in.Address),
			Phone:   deref(in.Phone),
			Email:   deref(in.Email),
		})
		if err != nil {
			return nil, err
		}
		return newSupplierResolver(s), nil
	})
}

// UpdateSupplier mutación updateSupplier(id, input); solo cambian los campos enviados.
func (r *Resolver) UpdateSupplier(ctx context.Context, args struct {
	ID    int32
	Input supplierUpdateInput
}) *SupplierResponse {
	in := args.Input
	return r.supplierResponse(ctx, "updateSupplier", func() (*SupplierResolver, error) {
		s, err := r.suppliers.Update(ctx, int64(args.ID), dto.UpdateSupplierRequest{
			Name:    in.Name,
			Address: in.Address,
			Phone:   in.Phone,
			Email:   in.Email,
		})
		if err != nil {
			return nil, err
		}
		return newSupplierResolver(s), nil
	})
}

// DeleteSupplier mutación deleteSupplier(id).
func (r *Resolver) DeleteSupplier(ctx context.Context, args idArgs) *DeleteResponse {
	return r.deleteResponse(ctx, "deleteSupplier", r.suppliers.Delete(ctx, int64(args.ID)))
}

// CreatePurchase mutación createPurchase(input).
func (r *Resolver) CreatePurchase(ctx context.Context, args struct{ Input purchaseInput }) *PurchaseResponse {
	req := dto.CreatePurchaseRequest{
		SupplierID: int64(args.Input.SupplierID),
		LineItems:  make([]dto.LineItemRequest, 0, len(args.Input.LineItems)),
	}
	for _, it := range args.Input.LineItems {
		req.LineItems = append(req.LineItems, dto.LineItemRequest{
			ProductID: int64(it.ProductID),
			Quantity:  int(it.Quantity),
			UnitPrice: decimal.NewFromFloat(it.UnitPrice),
		})
	}
	return r.purchaseResponse(ctx, "createPurchase", func() (*PurchaseResolver, error) {
		p, err := r.purchases.Create(ctx, req)
		if err != nil {
			return nil, err
		}
		return r.purchaseResolver(p), nil
	})
}

// UpdatePurchase mutación updatePurchase(id, input): cambia solo el estado.
func (r *Resolver) UpdatePurchase(ctx context.Context, args struct {
	ID    int32
	Input purchaseUpdateInput
}) *PurchaseResponse {
	return r.purchaseResponse(ctx, "updatePurchase", func() (*PurchaseResolver, error) {
		p, err := r.purchases.UpdateStatus(ctx, int64(args.ID), dto.UpdatePurchaseRequest{Status: args.Input.Status})
		if err != nil {
			return nil, err
		}
		return r.purchaseResolver(p), nil
	})
}

// DeletePurchase mutación deletePurchase(id): borra la compra y sus líneas.
func (r *Resolver) DeletePurchase(ctx context.Context, args idArgs) *DeleteResponse {
	return r.deleteResponse(ctx, "deletePurchase", r.purchases.Delete(ctx, int64(args.ID)))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
