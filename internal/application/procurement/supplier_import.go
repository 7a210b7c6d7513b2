package procurement

import (
	"context"

	"github.com/jhoicas/proveedores-api/internal/application/dto"
	"github.com/jhoicas/proveedores-api/internal/domain"
)

// Import crea los proveedores fila por fila, cada uno en su propia transacción: una fila
// rechazada no revierte las anteriores. Un fallo interno detiene la carga y se devuelve.
func (uc *SupplierUseCase) Import(ctx context.Context, rows []dto.SupplierImportRow) (dto.SupplierImportReport, error) {
	report := dto.SupplierImportReport{TotalRows: len(rows)}
	for _, row := range rows {
		_, err := uc.Create(ctx, row.Supplier)
		if err == nil {
			report.Created++
			continue
		}
		code := domain.CodeOf(err)
		switch code {
		case domain.CodeDuplicate:
			report.Duplicates++
		case domain.CodeValidation:
			report.Rejected++
		default:
			return report, err
		}
		de := domain.Internal(err)
		report.Errors = append(report.Errors, dto.SupplierImportError{
			Line:    row.Line,
			TaxID:   row.Supplier.TaxID,
			Code:    string(code),
			Message: de.Message,
		})
	}
	return report, nil
}
