package dto

import "github.com/shopspring/decimal"

// CreateSupplierRequest datos para createSupplier.
type CreateSupplierRequest struct {
	Name    string `json:"name"`
	TaxID   string `json:"tax_id"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// UpdateSupplierRequest datos para updateSupplier; solo cambian los campos no nil.
type UpdateSupplierRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
}

// CreatePurchaseRequest datos para createPurchase.
type CreatePurchaseRequest struct {
	SupplierID int64             `json:"supplier_id"`
	LineItems  []LineItemRequest `json:"line_items"`
}

// LineItemRequest línea de compra (producto del servicio de inventario, cantidad, precio unitario).
type LineItemRequest struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// UpdatePurchaseRequest datos para updatePurchase.
type UpdatePurchaseRequest struct {
	Status string `json:"status"`
}

// SupplierImportRow proveedor leído de un archivo junto con su línea física (1-indexada, la cabecera es la 1).
type SupplierImportRow struct {
	Line     int                   `json:"line"`
	Supplier CreateSupplierRequest `json:"supplier"`
}

// SupplierImportReport resultado de una carga masiva de proveedores (cmd/seed_suppliers).
type SupplierImportReport struct {
	TotalRows  int                   `json:"total_rows"`
	Created    int                   `json:"created"`
	Duplicates int                   `json:"duplicates"`
	Rejected   int                   `json:"rejected"`
	Errors     []SupplierImportError `json:"errors,omitempty"`
}

// SupplierImportError fila que no se pudo crear; Line es la línea del archivo donde empieza.
type SupplierImportError struct {
	Line    int    `json:"line"`
	TaxID   string `json:"tax_id"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
