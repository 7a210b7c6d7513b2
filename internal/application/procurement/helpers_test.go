package procurement_test

import (
	"context"
	"errors"

	"github.com/jhoicas/proveedores-api/internal/application/procurement"
	"github.com/jhoicas/proveedores-api/internal/domain/entity"
	"github.com/jhoicas/proveedores-api/internal/domain/repository"
	"github.com/jhoicas/proveedores-api/internal/infrastructure/memory"
)

var errDBDown = errors.New("conexión rechazada")

// faultyRunner envuelve el store en memoria y hace fallar CreateLineItem a partir de la línea failAt.
type faultyRunner struct {
	*memory.Store
	failAt int
}

var _ procurement.TxRunner = (*faultyRunner)(nil)

func (r *faultyRunner) Run(ctx context.Context, fn procurement.TxFunc) error {
	return r.Store.Run(ctx, func(s repository.SupplierRepository, p repository.PurchaseRepository) error {
		return fn(s, &faultyPurchases{PurchaseRepository: p, failAt: r.failAt})
	})
}

type faultyPurchases struct {
	repository.PurchaseRepository
	failAt int
	calls  int
}

func (f *faultyPurchases) CreateLineItem(ctx context.Context, it *entity.LineItem) error {
	f.calls++
	if f.calls >= f.failAt {
		return errDBDown
	}
	return f.PurchaseRepository.CreateLineItem(ctx, it)
}

// downRunner simula una base de datos inalcanzable: ni siquiera abre la transacción.
type downRunner struct{}

func (downRunner) Run(context.Context, procurement.TxFunc) error         { return errDBDown }
func (downRunner) RunReadOnly(context.Context, procurement.TxFunc) error { return errDBDown }
