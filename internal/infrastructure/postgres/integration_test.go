//go:build integration

package postgres_test

// Pruebas del gateway contra PostgreSQL real (testcontainers).
// Ejecutar con: go test -tags=integration ./internal/infrastructure/postgres/...

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/proveedores-api/internal/application/dto"
	"github.com/jhoicas/proveedores-api/internal/application/procurement"
	"github.com/jhoicas/proveedores-api/internal/domain"
	"github.com/jhoicas/proveedores-api/internal/domain/entity"
	"github.com/jhoicas/proveedores-api/internal/domain/repository"
	"github.com/jhoicas/proveedores-api/internal/infrastructure/postgres"
	"github.com/jhoicas/proveedores-api/pkg/config"
)

func setupRunner(t *testing.T) *postgres.TxRunner {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.Run(ctx, "postgres:16-alpine",
		tcPostgres.WithDatabase("proveedores_test"),
		tcPostgres.WithUsername("proveedores"),
		tcPostgres.WithPassword("proveedores"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	url, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: url, MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	applied, err := postgres.Migrate(ctx, pool)
	require.NoError(t, err)
	require.NotEmpty(t, applied)

	// Segunda pasada: los scripts son idempotentes.
	_, err = postgres.Migrate(ctx, pool)
	require.NoError(t, err)

	return postgres.NewTxRunner(pool)
}

func TestSupplierRepo_CRUDYRestricciones(t *testing.T) {
	runner := setupRunner(t)
	ctx := context.Background()

	var id int64
	err := runner.Run(ctx, func(suppliers repository.SupplierRepository, _ repository.PurchaseRepository) error {
		s := &entity.Supplier{Name: "Andina", TaxID: "900123456", Email: "ventas@andina.co"}
		if err := suppliers.Create(ctx, s); err != nil {
			return err
		}
		id = s.ID
		return nil
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	err = runner.Run(ctx, func(suppliers repository.SupplierRepository, _ repository.PurchaseRepository) error {
		return suppliers.Create(ctx, &entity.Supplier{Name: "Otra", TaxID: "900123456"})
	})
	assert.True(t, errors.Is(err, domain.ErrDuplicate), "tax_id repetido debe mapear a ErrDuplicate")

	err = runner.RunReadOnly(ctx, func(suppliers repository.SupplierRepository, _ repository.PurchaseRepository) error {
		s, err := suppliers.GetByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, s)
		assert.Equal(t, "Andina", s.Name)
		assert.Empty(t, s.Phone, "columna NULL se lee como cadena vacía")

		missing, err := suppliers.GetByID(ctx, id+1000)
		require.NoError(t, err)
		assert.Nil(t, missing)
		return nil
	})
	require.NoError(t, err)
}

func TestPurchaseRepo_LlaveForaneaYRollback(t *testing.T) {
	runner := setupRunner(t)
	ctx := context.Background()

	err := runner.Run(ctx, func(_ repository.SupplierRepository, purchases repository.PurchaseRepository) error {
		return purchases.Create(ctx, &entity.Purchase{
			SupplierID: 999, CreatedAt: time.Now().UTC(), Total: decimal.NewFromInt(1), Status: entity.PurchaseStatusPending,
		})
	})
	assert.True(t, errors.Is(err, domain.ErrForeignKey))

	suppliers := procurement.NewSupplierUseCase(runner, procurement.SupplierOptions{})
	purchasesUC := procurement.NewPurchaseUseCase(runner)

	s, err := suppliers.Create(ctx, dto.CreateSupplierRequest{Name: "Andina", TaxID: "900123456"})
	require.NoError(t, err)

	_, err = purchasesUC.Create(ctx, dto.CreatePurchaseRequest{
		SupplierID: s.ID,
		LineItems: []dto.LineItemRequest{
			{ProductID: 1, Quantity: 2, UnitPrice: decimal.RequireFromString("10.50")},
			{ProductID: 2, Quantity: -1, UnitPrice: decimal.NewFromInt(3)},
		},
	})
	require.Error(t, err)
	assert.Equal(t, domain.CodeValidation, domain.CodeOf(err))

	list, err := purchasesUC.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "la compra parcial debe haberse revertido")
}

func TestPurchase_CicloCompleto(t *testing.T) {
	runner := setupRunner(t)
	ctx := context.Background()

	suppliers := procurement.NewSupplierUseCase(runner, procurement.SupplierOptions{})
	purchases := procurement.NewPurchaseUseCase(runner)

	s, err := suppliers.Create(ctx, dto.CreateSupplierRequest{Name: "Andina", TaxID: "900123456"})
	require.NoError(t, err)

	p, err := purchases.Create(ctx, dto.CreatePurchaseRequest{
		SupplierID: s.ID,
		LineItems: []dto.LineItemRequest{
			{ProductID: 10, Quantity: 2, UnitPrice: decimal.RequireFromString("15000")},
			{ProductID: 11, Quantity: 3, UnitPrice: decimal.RequireFromString("2500.50")},
		},
	})
	require.NoError(t, err)
	assert.True(t, p.Total.Equal(decimal.RequireFromString("37501.50")), "total: %s", p.Total)

	got, err := purchases.Get(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.LineItems, 2)
	assert.True(t, got.Total.Equal(p.Total))
	assert.Equal(t, time.UTC, got.CreatedAt.Location())
	assert.True(t, got.CreatedAt.Equal(p.CreatedAt))

	err = suppliers.Delete(ctx, s.ID)
	assert.Equal(t, domain.CodeConstraint, domain.CodeOf(err))

	updated, err := purchases.UpdateStatus(ctx, p.ID, dto.UpdatePurchaseRequest{Status: entity.PurchaseStatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseStatusCompleted, updated.Status)
	assert.True(t, updated.Total.Equal(p.Total))

	require.NoError(t, purchases.Delete(ctx, p.ID))
	require.NoError(t, suppliers.Delete(ctx, s.ID))

	_, err = suppliers.Get(ctx, s.ID)
	assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))
}
