package entity

import "github.com/shopspring/decimal"

// LineItem representa una línea de detalle de una compra.
// ProductID referencia un producto del microservicio de inventario; aquí no se valida.
type LineItem struct {
	ID         int64
	PurchaseID int64
	ProductID  int64
	Quantity   int
	UnitPrice  decimal.Decimal
	Subtotal   decimal.Decimal
}
