// seed_suppliers carga proveedores desde un CSV exportado de hoja de cálculo.
//
// Uso: go run ./cmd/seed_suppliers [ruta/proveedores.csv] [codificación]
// Por defecto busca proveedores.csv en el directorio actual, codificación utf-8
// (también iso-8859-1 y windows-1252). Usa la misma configuración que cmd/api
// (DATABASE_URL, SUPPLIER_STRICT_NIT, ...) y las mismas validaciones que createSupplier.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jhoicas/proveedores-api/internal/application/procurement"
	"github.com/jhoicas/proveedores-api/internal/infrastructure/csvimport"
	"github.com/jhoicas/proveedores-api/internal/infrastructure/postgres"
	"github.com/jhoicas/proveedores-api/pkg/config"
	"github.com/jhoicas/proveedores-api/pkg/logger"
)

func main() {
	csvPath := "proveedores.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	encoding := csvimport.EncodingUTF8
	if len(os.Args) > 2 {
		encoding = os.Args[2]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Service: "seed_suppliers"})

	f, err := os.Open(csvPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", csvPath).Msg("abrir CSV")
	}
	defer f.Close()

	rows, err := csvimport.ReadSuppliers(f, encoding)
	if err != nil {
		log.Fatal().Err(err).Str("path", csvPath).Msg("leer CSV")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	if cfg.DB.AutoMigrate {
		if _, err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	uc := procurement.NewSupplierUseCase(postgres.NewTxRunner(pool), procurement.SupplierOptions{
		StrictNIT: cfg.Suppliers.StrictNIT,
	})
	report, err := uc.Import(ctx, rows)
	if err != nil {
		log.Error().Err(err).Int("creados", report.Created).Msg("carga interrumpida")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(report)

	log.Info().
		Int("filas", report.TotalRows).
		Int("creados", report.Created).
		Int("duplicados", report.Duplicates).
		Int("rechazados", report.Rejected).
		Msg("carga de proveedores finalizada")
	if err != nil {
		os.Exit(1)
	}
}
