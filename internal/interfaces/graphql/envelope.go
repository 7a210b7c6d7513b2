package graphql

import (
	"context"
	"errors"

	"github.com/jhoicas/proveedores-api/internal/domain"
)

// ErrorResolver es el tipo Error del esquema: {message, code}.
type ErrorResolver struct {
	message string
	code    domain.ErrorCode
}

func (e *ErrorResolver) Message() string { return e.message }
func (e *ErrorResolver) Code() string    { return string(e.code) }

// SupplierResponse sobre de las operaciones de un proveedor: exactamente uno de supplier/error.
type SupplierResponse struct {
	supplier *SupplierResolver
	err      *ErrorResolver
}

func (r *SupplierResponse) Supplier() *SupplierResolver { return r.supplier }
func (r *SupplierResponse) Error() *ErrorResolver       { return r.err }

// PurchaseResponse sobre de las operaciones de una compra.
type PurchaseResponse struct {
	purchase *PurchaseResolver
	err      *ErrorResolver
}

func (r *PurchaseResponse) Purchase() *PurchaseResolver { return r.purchase }
func (r *PurchaseResponse) Error() *ErrorResolver       { return r.err }

// DeleteResponse resultado de un borrado; Success es false si y solo si hay error.
type DeleteResponse struct {
	err *ErrorResolver
}

func (r *DeleteResponse) Success() bool         { return r.err == nil }
func (r *DeleteResponse) Error() *ErrorResolver { return r.err }

// toError convierte un fallo en el Error del esquema. Lo que no es *domain.Error se
// reporta como INTERNAL_ERROR con mensaje genérico; la causa solo va al log.
func (r *Resolver) toError(ctx context.Context, err error, op string) *ErrorResolver {
	var de *domain.Error
	if !errors.As(err, &de) {
		de = domain.Internal(err)
	}
	if de.Code == domain.CodeInternal {
		r.logFailure(ctx, err, op)
	}
	return &ErrorResolver{message: de.Message, code: de.Code}
}

func (r *Resolver) supplierResponse(ctx context.Context, op string, fn func() (*SupplierResolver, error)) *SupplierResponse {
	s, err := fn()
	if err != nil {
		return &SupplierResponse{err: r.toError(ctx, err, op)}
	}
	return &SupplierResponse{supplier: s}
}

func (r *Resolver) purchaseResponse(ctx context.Context, op string, fn func() (*PurchaseResolver, error)) *PurchaseResponse {
	p, err := fn()
	if err != nil {
		return &PurchaseResponse{err: r.toError(ctx, err, op)}
	}
	return &PurchaseResponse{purchase: p}
}

func (r *Resolver) deleteResponse(ctx context.Context, op string, err error) *DeleteResponse {
	if err != nil {
		return &DeleteResponse{err: r.toError(ctx, err, op)}
	}
	return &DeleteResponse{}
}

// listError es el error GraphQL de las consultas de lista (no tienen sobre).
// Extensions lo expone como extensions.code.
type listError struct {
	de *domain.Error
}

func (e *listError) Error() string { return e.de.Message }

func (e *listError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": string(e.de.Code)}
}

func (r *Resolver) listFailure(ctx context.Context, err error, op string) error {
	gerr := r.toError(ctx, err, op)
	return &listError{de: &domain.Error{Code: gerr.code, Message: gerr.message}}
}
