package repository

import (
	"context"

	"github.com/jhoicas/proveedores-api/internal/domain/entity"
)

// PurchaseRepository define el puerto de persistencia para Purchase y sus líneas de detalle.
// Las líneas no tienen ciclo de vida propio: solo se crean y eliminan junto con su compra.
type PurchaseRepository interface {
	// Create inserta la cabecera y asigna purchase.ID. No persiste purchase.LineItems.
	// Devuelve domain.ErrForeignKey si el proveedor no existe.
	Create(ctx context.Context, purchase *entity.Purchase) error
	// CreateLineItem inserta una línea y asigna item.ID.
	CreateLineItem(ctx context.Context, item *entity.LineItem) error
	// GetByID devuelve (nil, nil) si la compra no existe. No carga las líneas.
	GetByID(ctx context.Context, id int64) (*entity.Purchase, error)
	List(ctx context.Context) ([]*entity.Purchase, error)
	// ListLineItems devuelve las líneas de las compras indicadas, ordenadas por id.
	ListLineItems(ctx context.Context, purchaseIDs ...int64) ([]*entity.LineItem, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	CountBySupplier(ctx context.Context, supplierID int64) (int, error)
	DeleteLineItems(ctx context.Context, purchaseID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}
