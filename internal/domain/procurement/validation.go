// Package procurement contiene las reglas de dominio de proveedores y compras: validaciones puras
// y campos calculados. Ninguna función accede a persistencia.
package procurement

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/proveedores-api/internal/domain"
	"github.com/jhoicas/proveedores-api/internal/domain/entity"
	"github.com/jhoicas/proveedores-api/pkg/dian"
)

// SupplierPatch campos opcionales de una actualización de proveedor. nil = no se modifica.
type SupplierPatch struct {
	Name    *string
	Address *string
	Phone   *string
	Email   *string
}

// Empty indica que no se suministró ningún campo.
func (p SupplierPatch) Empty() bool {
	return p.Name == nil && p.Address == nil && p.Phone == nil && p.Email == nil
}

// Apply copia sobre s solo los campos presentes.
func (p SupplierPatch) Apply(s *entity.Supplier) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Address != nil {
		s.Address = *p.Address
	}
	if p.Phone != nil {
		s.Phone = *p.Phone
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
}

// LineInput cantidad y precio de una línea tal como llegan del cliente.
type LineInput struct {
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}

// Longitudes máximas de las columnas de suppliers (VARCHAR, en caracteres).
const (
	MaxSupplierNameLen    = 100
	MaxSupplierTaxIDLen   = 20
	MaxSupplierAddressLen = 200
	MaxSupplierPhoneLen   = 20
	MaxSupplierEmailLen   = 100
)

// ValidateSupplierCreate exige nombre y NIT. Con strictNIT el NIT debe tener 9 dígitos (el dígito de
// verificación se calcula) o 10 con dígito de verificación DIAN correcto.
func ValidateSupplierCreate(name, taxID string, strictNIT bool) *domain.Error {
	if strings.TrimSpace(name) == "" {
		return domain.Validation("El nombre del proveedor es requerido")
	}
	if strings.TrimSpace(taxID) == "" {
		return domain.Validation("El NIT del proveedor es requerido")
	}
	if strictNIT {
		if _, err := dian.FormatNIT(taxID); err != nil {
			return domain.Validation("El NIT %s no es válido: %v", taxID, err)
		}
	}
	return nil
}

// ValidateSupplierUpdate exige al menos un campo; si viene el nombre no puede quedar vacío.
func ValidateSupplierUpdate(p SupplierPatch) *domain.Error {
	if p.Empty() {
		return domain.Validation("Debe proporcionar al menos un campo para actualizar")
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return domain.Validation("El nombre no puede estar vacío")
	}
	return nil
}

// ValidateSupplierLengths comprueba que los campos quepan en sus columnas.
func ValidateSupplierLengths(s *entity.Supplier) *domain.Error {
	fields := []struct {
		label string
		value string
		max   int
	}{
		{"nombre", s.Name, MaxSupplierNameLen},
		{"NIT", s.TaxID, MaxSupplierTaxIDLen},
		{"dirección", s.Address, MaxSupplierAddressLen},
		{"teléfono", s.Phone, MaxSupplierPhoneLen},
		{"email", s.Email, MaxSupplierEmailLen},
	}
	for _, f := range fields {
		if utf8.RuneCountInString(f.value) > f.max {
			return domain.Validation("El campo %s no puede superar %d caracteres", f.label, f.max)
		}
	}
	return nil
}

// ValidateSupplierDeletable bloquea el borrado de un proveedor con compras asociadas.
func ValidateSupplierDeletable(purchaseCount int) *domain.Error {
	if purchaseCount > 0 {
		return domain.Constraint("No se puede eliminar el proveedor porque tiene %d compra(s) asociada(s). Elimine primero las compras.", purchaseCount)
	}
	return nil
}

// ValidateLineItemsPresent exige al menos una línea en la compra.
func ValidateLineItemsPresent(n int) *domain.Error {
	if n == 0 {
		return domain.Validation("La compra debe tener al menos un detalle")
	}
	return nil
}

// ValidateLineItem valida la línea en la posición indicada (1-indexada).
func ValidateLineItem(position int, in LineInput) *domain.Error {
	if in.Quantity <= 0 {
		return domain.Validation("La cantidad en el detalle %d debe ser mayor a 0", position)
	}
	if !in.UnitPrice.IsPositive() {
		return domain.Validation("El precio unitario en el detalle %d debe ser mayor a 0", position)
	}
	return nil
}

// ValidateStatus acepta solo los estados de entity.PurchaseStatuses.
func ValidateStatus(status string) *domain.Error {
	for _, s := range entity.PurchaseStatuses {
		if status == s {
			return nil
		}
	}
	return domain.Validation("Estado no válido. Los estados permitidos son: %s", strings.Join(entity.PurchaseStatuses, ", "))
}

// LineSubtotal = cantidad × precio unitario.
func LineSubtotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(quantity)).Mul(unitPrice)
}

// PurchaseTotal suma los subtotales de todas las líneas, sin validarlas.
func PurchaseTotal(lines []LineInput) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(LineSubtotal(l.Quantity, l.UnitPrice))
	}
	return total
}
