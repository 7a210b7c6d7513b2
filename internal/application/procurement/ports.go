// Package procurement implementa los casos de uso de proveedores y compras.
// Cada operación corre en su propia transacción y devuelve siempre errores *domain.Error.
package procurement

import (
	"context"

	"github.com/jhoicas/proveedores-api/internal/domain/repository"
)

// TxFunc recibe los repositorios atados a la transacción en curso.
type TxFunc func(suppliers repository.SupplierRepository, purchases repository.PurchaseRepository) error

// TxRunner ejecuta fn dentro de una transacción: commit si fn retorna nil, rollback en cualquier otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn TxFunc) error
	// RunReadOnly igual que Run pero en una transacción de solo lectura.
	RunReadOnly(ctx context.Context, fn TxFunc) error
}
