package procurement_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/proveedores-api/internal/application/dto"
	"github.com/jhoicas/proveedores-api/internal/application/procurement"
	"github.com/jhoicas/proveedores-api/internal/domain"
	"github.com/jhoicas/proveedores-api/internal/infrastructure/memory"
)

func strPtr(s string) *string { return &s }

func buildSupplierUC(opts procurement.SupplierOptions) (*procurement.SupplierUseCase, *procurement.PurchaseUseCase, *memory.Store) {
	store := memory.NewStore()
	return procurement.NewSupplierUseCase(store, opts), procurement.NewPurchaseUseCase(store), store
}

func andina() dto.CreateSupplierRequest {
	return dto.CreateSupplierRequest{
		Name:    "Distribuidora Andina S.A.S.",
		TaxID:   "900123456-8",
		Address: "Cra 7 # 12-34, Bogotá",
		Phone:   "+57 601 555 0101",
		Email:   "compras@andina.co",
	}
}

// ── Crear ────────────────────────────────────────────────────────────────────

func TestCreateSupplier_EcoDeCamposConIDNuevo(t *testing.T) {
	uc, _, _ := buildSupplierUC(procurement.SupplierOptions{})
	in := andina()

	s, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.NotZero(t, s.ID)
	assert.Equal(t, in.Name, s.Name)
	assert.Equal(t, in.TaxID, s.TaxID)
	assert.Equal(t, in.Address, s.Address)
	assert.Equal(t, in.Phone, s.Phone)
	assert.Equal(t, in.Email, s.Email)

	other := in
	other.TaxID = "800987654-4"
	s2, err := uc.Create(context.Background(), other)
	require.NoError(t, err)
	assert.NotEqual(t, s.ID, s2.ID)
}

func TestCreateSupplier_NITDuplicado(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := buildSupplierUC(procurement.SupplierOptions{})

	first, err := uc.Create(ctx, andina())
	require.NoError(t, err)

	dup := andina()
	dup.Name = "Otra razón social"
	_, err = uc.Create(ctx, dup)
	require.Error(t, err)
	assert.Equal(t, domain.CodeDuplicate, domain.CodeOf(err))
	assert.Contains(t, err.Error(), "900123456-8")

	got, err := uc.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Distribuidora Andina S.A.S.", got.Name, "el primer proveedor no debe cambiar")
}

func TestCreateSupplier_CamposRequeridos(t *testing.T) {
	uc, _, store := buildSupplierUC(procurement.SupplierOptions{})

	_, err := uc.Create(context.Background(), dto.CreateSupplierRequest{TaxID: "1"})
	assert.Equal(t, domain.CodeValidation, domain.CodeOf(err))

	_, err = uc.Create(context.Background(), dto.CreateSupplierRequest{Name: "Sin NIT"})
	assert.Equal(t, domain.CodeValidation, domain.CodeOf(err))

	n, _, _ := store.Counts()
	assert.Zero(t, n)
}

func TestCreateSupplier_NITEstrictoNormaliza(t *testing.T) {
	uc, _, _ := buildSupplierUC(procurement.SupplierOptions{StrictNIT: true})

	in := andina()
	in.TaxID = "900.123.456-8"
	s, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "900123456-8", s.TaxID)

	in.TaxID = "900123456-3"
	_, err = uc.Create(context.Background(), in)
	assert.Equal(t, domain.CodeValidation, domain.CodeOf(err))
}

func TestCreateSupplier_NITEstrictoCalculaDigito(t *testing.T) {
	uc, _, _ := buildSupplierUC(procurement.SupplierOptions{StrictNIT: true})

	in := andina()
	in.TaxID = "800987654"
	s, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "800987654-4", s.TaxID)
}

// El almacenamiento en memoria no limita longitudes; la validación responde igual que PostgreSQL.
func TestSupplier_LongitudesSonValidacion(t *testing.T) {
	uc, _, store := buildSupplierUC(procurement.SupplierOptions{})

	in := andina()
	in.TaxID = strings.Repeat("1", 21)
	_, err := uc.Create(context.Background(), in)
	assert.Equal(t, domain.CodeValidation, domain.CodeOf(err))
	n, _, _ := store.Counts()
	assert.Zero(t, n)

	s, err := uc.Create(context.Background(), andina())
	require.NoError(t, err)

	long := strings.Repeat("a", 101)
	_, err = uc.Update(context.Background(), s.ID, dto.UpdateSupplierRequest{Email: &long})
	assert.Equal(t, domain.CodeValidation, domain.CodeOf(err))

	got, err := uc.Get(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, "compras@andina.co", got.Email, "la actualización rechazada no se aplica")
}

func TestSupplier_FalloDeConexionEsInterno(t *testing.T) {
	uc := procurement.NewSupplierUseCase(downRunner{}, procurement.SupplierOptions{})

	_, err := uc.Create(context.Background(), andina())
	assert.Equal(t, domain.CodeInternal, domain.CodeOf(err))
	assert.ErrorIs(t, err, errDBDown, "la causa se conserva para los logs")

	_, err = uc.List(context.Background())
	assert.Equal(t, domain.CodeInternal, domain.CodeOf(err))
}

// ── Consultar ────────────────────────────────────────────────────────────────

func TestGetSupplier_NoEncontrado(t *testing.T) {
	uc, _, _ := buildSupplierUC(procurement.SupplierOptions{})
	_, err := uc.Get(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))
	assert.Contains(t, err.Error(), "42")
}

func TestListSuppliers_VacioNoEsError(t *testing.T) {
	uc, _, _ := buildSupplierUC(procurement.SupplierOptions{})
	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

// ── Actualizar ───────────────────────────────────────────────────────────────

func TestUpdateSupplier_SoloCamposPresentes(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := buildSupplierUC(procurement.SupplierOptions{})
	s, err := uc.Create(ctx, andina())
	require.NoError(t, err)

	updated, err := uc.Update(ctx, s.ID, dto.UpdateSupplierRequest{Phone: strPtr("300 000 0000")})
	require.NoError(t, err)
	assert.Equal(t, "300 000 0000", updated.Phone)
	assert.Equal(t, s.Name, updated.Name)
	assert.Equal(t, s.Email, updated.Email)
	assert.Equal(t, s.TaxID, updated.TaxID)

	got, err := uc.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "300 000 0000", got.Phone, "el cambio debe quedar persistido")
}

func TestUpdateSupplier_Errores(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := buildSupplierUC(procurement.SupplierOptions{})
	s, err := uc.Create(ctx, andina())
	require.NoError(t, err)

	_, err = uc.Update(ctx, 999, dto.UpdateSupplierRequest{Name: strPtr("X")})
	assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))

	_, err = uc.Update(ctx, s.ID, dto.UpdateSupplierRequest{})
	assert.Equal(t, domain.CodeValidation, domain.CodeOf(err))

	_, err = uc.Update(ctx, s.ID, dto.UpdateSupplierRequest{Name: strPtr("  ")})
	assert.Equal(t, domain.CodeValidation, domain.CodeOf(err))

	got, err := uc.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.Name, got.Name)
}

// ── Eliminar ─────────────────────────────────────────────────────────────────

func TestDeleteSupplier_ConComprasEsConstraint(t *testing.T) {
	ctx := context.Background()
	suppliers, purchases, _ := buildSupplierUC(procurement.SupplierOptions{})
	s, err := suppliers.Create(ctx, andina())
	require.NoError(t, err)
	p, err := purchases.Create(ctx, dto.CreatePurchaseRequest{
		SupplierID: s.ID,
		LineItems:  []dto.LineItemRequest{{ProductID: 7, Quantity: 1, UnitPrice: decimal.NewFromInt(100)}},
	})
	require.NoError(t, err)

	err = suppliers.Delete(ctx, s.ID)
	require.Error(t, err)
	assert.Equal(t, domain.CodeConstraint, domain.CodeOf(err))

	_, err = suppliers.Get(ctx, s.ID)
	assert.NoError(t, err, "el proveedor sigue existiendo")
	_, err = purchases.Get(ctx, p.ID)
	assert.NoError(t, err, "la compra sigue existiendo")
}

func TestDeleteSupplier_SinCompras(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := buildSupplierUC(procurement.SupplierOptions{})
	s, err := uc.Create(ctx, andina())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, s.ID))
	_, err = uc.Get(ctx, s.ID)
	assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))

	err = uc.Delete(ctx, s.ID)
	assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))
}
