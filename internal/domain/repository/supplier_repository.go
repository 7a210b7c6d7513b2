package repository

import (
	"context"

	"github.com/jhoicas/proveedores-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier.
// GetByID devuelve (nil, nil) si el proveedor no existe.
type SupplierRepository interface {
	// Create inserta el proveedor y asigna supplier.ID. Devuelve domain.ErrDuplicate si el NIT ya existe.
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id int64) (*entity.Supplier, error)
	List(ctx context.Context) ([]*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	// Delete devuelve domain.ErrForeignKey si aún hay compras que apuntan al proveedor.
	Delete(ctx context.Context, id int64) error
}
