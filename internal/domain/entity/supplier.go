package entity

// Supplier representa un proveedor (tabla suppliers).
type Supplier struct {
	ID      int64
	Name    string
	TaxID   string // NIT (Colombia), único en todo el sistema
	Address string
	Phone   string
	Email   string
}
