package procurement_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/proveedores-api/internal/application/dto"
	"github.com/jhoicas/proveedores-api/internal/application/procurement"
)

func TestImportSuppliers_ReporteYFilasIndependientes(t *testing.T) {
	uc, _, store := buildSupplierUC(procurement.SupplierOptions{})
	ctx := context.Background()

	report, err := uc.Import(ctx, []dto.SupplierImportRow{
		{Line: 2, Supplier: dto.CreateSupplierRequest{Name: "Andina", TaxID: "900123456"}},
		{Line: 3, Supplier: dto.CreateSupplierRequest{Name: "", TaxID: "800987654"}},
		{Line: 5, Supplier: dto.CreateSupplierRequest{Name: "Andina bis", TaxID: "900123456"}},
		{Line: 6, Supplier: dto.CreateSupplierRequest{Name: "Caribe", TaxID: "800987654"}},
	})
	require.NoError(t, err)

	assert.Equal(t, 4, report.TotalRows)
	assert.Equal(t, 2, report.Created)
	assert.Equal(t, 1, report.Duplicates)
	assert.Equal(t, 1, report.Rejected)
	require.Len(t, report.Errors, 2)
	assert.Equal(t, 3, report.Errors[0].Line)
	assert.Equal(t, "VALIDATION_ERROR", report.Errors[0].Code)
	assert.Equal(t, 5, report.Errors[1].Line, "se reporta la línea del archivo, no la posición")
	assert.Equal(t, "DUPLICATE_ERROR", report.Errors[1].Code)

	suppliers, _, _ := store.Counts()
	assert.Equal(t, 2, suppliers)
}

func TestImportSuppliers_FalloInternoDetiene(t *testing.T) {
	uc := procurement.NewSupplierUseCase(downRunner{}, procurement.SupplierOptions{})

	report, err := uc.Import(context.Background(), []dto.SupplierImportRow{
		{Line: 2, Supplier: dto.CreateSupplierRequest{Name: "Andina", TaxID: "900123456"}},
		{Line: 3, Supplier: dto.CreateSupplierRequest{Name: "Caribe", TaxID: "800987654"}},
	})
	require.Error(t, err)
	assert.Zero(t, report.Created)
	assert.Empty(t, report.Errors)
}
