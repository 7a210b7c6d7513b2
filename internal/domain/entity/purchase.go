package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una compra.
const (
	PurchaseStatusPending   = "pendiente" // Estado inicial de toda compra
	PurchaseStatusCompleted = "completada"
	PurchaseStatusCancelled = "cancelada"
)

// PurchaseStatuses lista los estados permitidos en el orden en que se muestran al cliente.
var PurchaseStatuses = []string{PurchaseStatusPending, PurchaseStatusCompleted, PurchaseStatusCancelled}

// Purchase representa la cabecera de una compra a un proveedor.
// Total se calcula una sola vez al crear la compra y no se recalcula en ediciones posteriores.
type Purchase struct {
	ID         int64
	SupplierID int64
	CreatedAt  time.Time // UTC, asignado por el servidor
	Total      decimal.Decimal
	Status     string
	LineItems  []*LineItem
}
