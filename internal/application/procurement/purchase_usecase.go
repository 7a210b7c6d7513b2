package procurement

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/proveedores-api/internal/application/dto"
	"github.com/jhoicas/proveedores-api/internal/domain"
	"github.com/jhoicas/proveedores-api/internal/domain/entity"
	domainproc "github.com/jhoicas/proveedores-api/internal/domain/procurement"
	"github.com/jhoicas/proveedores-api/internal/domain/repository"
)

// PurchaseUseCase casos de uso de compras. Cabecera y líneas se escriben siempre en la misma transacción.
type PurchaseUseCase struct {
	tx TxRunner
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(tx TxRunner) *PurchaseUseCase {
	return &PurchaseUseCase{tx: tx}
}

// Get obtiene una compra con sus líneas (NOT_FOUND si no existe).
func (uc *PurchaseUseCase) Get(ctx context.Context, id int64) (*entity.Purchase, error) {
	var out *entity.Purchase
	err := uc.tx.RunReadOnly(ctx, func(_ repository.SupplierRepository, purchases repository.PurchaseRepository) error {
		p, err := findPurchase(ctx, purchases, id)
		if err != nil {
			return err
		}
		if err := attachLineItems(ctx, purchases, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, domain.Internal(err)
	}
	return out, nil
}

// List devuelve todas las compras con sus líneas. Una lista vacía no es un error.
func (uc *PurchaseUseCase) List(ctx context.Context) ([]*entity.Purchase, error) {
	out := []*entity.Purchase{}
	err := uc.tx.RunReadOnly(ctx, func(_ repository.SupplierRepository, purchases repository.PurchaseRepository) error {
		list, err := purchases.List(ctx)
		if err != nil {
			return err
		}
		if err := attachLineItems(ctx, purchases, list...); err != nil {
			return err
		}
		out = append(out, list...)
		return nil
	})
	if err != nil {
		return nil, domain.Internal(err)
	}
	return out, nil
}

// Create registra la compra en estado pendiente con total = Σ(cantidad × precio).
// Las líneas se validan después de escribir la cabecera; la primera línea inválida revierte toda la transacción.
func (uc *PurchaseUseCase) Create(ctx context.Context, in dto.CreatePurchaseRequest) (*entity.Purchase, error) {
	lines := make([]domainproc.LineInput, 0, len(in.LineItems))
	for _, li := range in.LineItems {
		lines = append(lines, domainproc.LineInput{ProductID: li.ProductID, Quantity: li.Quantity, UnitPrice: li.UnitPrice})
	}

	var out *entity.Purchase
	err := uc.tx.Run(ctx, func(suppliers repository.SupplierRepository, purchases repository.PurchaseRepository) error {
		supplier, err := suppliers.GetByID(ctx, in.SupplierID)
		if err != nil {
			return err
		}
		if supplier == nil {
			return supplierMissing(in.SupplierID)
		}
		if verr := domainproc.ValidateLineItemsPresent(len(lines)); verr != nil {
			return verr
		}

		p := &entity.Purchase{
			SupplierID: in.SupplierID,
			CreatedAt:  time.Now().UTC().Truncate(time.Microsecond), // precisión de timestamptz
			Total:      domainproc.PurchaseTotal(lines),
			Status:     entity.PurchaseStatusPending,
		}
		if err := purchases.Create(ctx, p); err != nil {
			if errors.Is(err, domain.ErrForeignKey) {
				return supplierMissing(in.SupplierID)
			}
			return err
		}

		p.LineItems = make([]*entity.LineItem, 0, len(lines))
		for i, l := range lines {
			if verr := domainproc.ValidateLineItem(i+1, l); verr != nil {
				return verr
			}
			item := &entity.LineItem{
				PurchaseID: p.ID,
				ProductID:  l.ProductID,
				Quantity:   l.Quantity,
				UnitPrice:  l.UnitPrice,
				Subtotal:   domainproc.LineSubtotal(l.Quantity, l.UnitPrice),
			}
			if err := purchases.CreateLineItem(ctx, item); err != nil {
				return err
			}
			p.LineItems = append(p.LineItems, item)
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, domain.Internal(err)
	}
	return out, nil
}

// UpdateStatus cambia el estado de la compra. El total no se recalcula.
func (uc *PurchaseUseCase) UpdateStatus(ctx context.Context, id int64, in dto.UpdatePurchaseRequest) (*entity.Purchase, error) {
	var out *entity.Purchase
	err := uc.tx.Run(ctx, func(_ repository.SupplierRepository, purchases repository.PurchaseRepository) error {
		p, err := findPurchase(ctx, purchases, id)
		if err != nil {
			return err
		}
		if verr := domainproc.ValidateStatus(in.Status); verr != nil {
			return verr
		}
		if err := purchases.UpdateStatus(ctx, id, in.Status); err != nil {
			return err
		}
		p.Status = in.Status
		if err := attachLineItems(ctx, purchases, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, domain.Internal(err)
	}
	return out, nil
}

// Delete elimina la compra y todas sus líneas en una sola transacción.
func (uc *PurchaseUseCase) Delete(ctx context.Context, id int64) error {
	err := uc.tx.Run(ctx, func(_ repository.SupplierRepository, purchases repository.PurchaseRepository) error {
		if _, err := findPurchase(ctx, purchases, id); err != nil {
			return err
		}
		if _, err := purchases.DeleteLineItems(ctx, id); err != nil {
			return err
		}
		return purchases.Delete(ctx, id)
	})
	if err != nil {
		return domain.Internal(err)
	}
	return nil
}

func findPurchase(ctx context.Context, purchases repository.PurchaseRepository, id int64) (*entity.Purchase, error) {
	p, err := purchases.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFound("No se encontró la compra con ID %d", id)
	}
	return p, nil
}

func supplierMissing(id int64) *domain.Error {
	return domain.NotFound("No existe un proveedor con ID %d", id)
}

// attachLineItems carga las líneas de todas las compras con una sola consulta.
func attachLineItems(ctx context.Context, purchases repository.PurchaseRepository, list ...*entity.Purchase) error {
	if len(list) == 0 {
		return nil
	}
	byID := make(map[int64]*entity.Purchase, len(list))
	ids := make([]int64, 0, len(list))
	for _, p := range list {
		p.LineItems = []*entity.LineItem{}
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}
	items, err := purchases.ListLineItems(ctx, ids...)
	if err != nil {
		return err
	}
	for _, it := range items {
		if p, ok := byID[it.PurchaseID]; ok {
			p.LineItems = append(p.LineItems, it)
		}
	}
	return nil
}
