package graphql

import (
	"context"

	"github.com/jhoicas/proveedores-api/internal/application/procurement"
	"github.com/jhoicas/proveedores-api/internal/domain/entity"
	"github.com/jhoicas/proveedores-api/pkg/logger"
)

// Resolver raíz de Query y Mutation.
type Resolver struct {
	suppliers *procurement.SupplierUseCase
	purchases *procurement.PurchaseUseCase
	log       *logger.Logger
}

// NewResolver construye el resolver raíz. Si log es nil se descartan los logs.
func NewResolver(suppliers *procurement.SupplierUseCase, purchases *procurement.PurchaseUseCase, log *logger.Logger) *Resolver {
	if log == nil {
		log = logger.Nop()
	}
	return &Resolver{suppliers: suppliers, purchases: purchases, log: log}
}

func (r *Resolver) logFailure(ctx context.Context, err error, op string) {
	r.log.ForContext(ctx).Error().Err(err).Str("operation", op).Msg("fallo interno en resolver")
}

func (r *Resolver) purchaseResolver(p *entity.Purchase) *PurchaseResolver {
	return &PurchaseResolver{p: p, root: r}
}
