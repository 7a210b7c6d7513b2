package procurement

import (
	"context"
	"errors"

	"github.com/jhoicas/proveedores-api/internal/application/dto"
	"github.com/jhoicas/proveedores-api/internal/domain"
	"github.com/jhoicas/proveedores-api/internal/domain/entity"
	domainproc "github.com/jhoicas/proveedores-api/internal/domain/procurement"
	"github.com/jhoicas/proveedores-api/internal/domain/repository"
	"github.com/jhoicas/proveedores-api/pkg/dian"
)

// SupplierOptions ajustes de validación de proveedores.
type SupplierOptions struct {
	// StrictNIT exige un NIT DIAN válido y lo guarda normalizado (XXXXXXXXX-D). Con 9 dígitos
	// se calcula el dígito de verificación; con 10 se comprueba.
	StrictNIT bool
}

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	tx   TxRunner
	opts SupplierOptions
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(tx TxRunner, opts SupplierOptions) *SupplierUseCase {
	return &SupplierUseCase{tx: tx, opts: opts}
}

// Get obtiene un proveedor por ID (NOT_FOUND si no existe).
func (uc *SupplierUseCase) Get(ctx context.Context, id int64) (*entity.Supplier, error) {
	var out *entity.Supplier
	err := uc.tx.RunReadOnly(ctx, func(suppliers repository.SupplierRepository, _ repository.PurchaseRepository) error {
		s, err := findSupplier(ctx, suppliers, id)
		if err != nil {
			return err
		}
		out = s
		return nil
	})
	if err != nil {
		return nil, domain.Internal(err)
	}
	return out, nil
}

// List devuelve todos los proveedores. Una lista vacía no es un error.
func (uc *SupplierUseCase) List(ctx context.Context) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	err := uc.tx.RunReadOnly(ctx, func(suppliers repository.SupplierRepository, _ repository.PurchaseRepository) error {
		list, err := suppliers.List(ctx)
		if err != nil {
			return err
		}
		out = list
		return nil
	})
	if err != nil {
		return nil, domain.Internal(err)
	}
	if out == nil {
		out = []*entity.Supplier{}
	}
	return out, nil
}

// Create valida y registra un proveedor. Un NIT repetido es DUPLICATE_ERROR.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*entity.Supplier, error) {
	if verr := domainproc.ValidateSupplierCreate(in.Name, in.TaxID, uc.opts.StrictNIT); verr != nil {
		return nil, verr
	}
	taxID := in.TaxID
	if uc.opts.StrictNIT {
		formatted, err := dian.FormatNIT(taxID)
		if err != nil {
			return nil, domain.Validation("El NIT %s no es válido: %v", taxID, err)
		}
		taxID = formatted
	}
	supplier := &entity.Supplier{
		Name:    in.Name,
		TaxID:   taxID,
		Address: in.Address,
		Phone:   in.Phone,
		Email:   in.Email,
	}
	if verr := domainproc.ValidateSupplierLengths(supplier); verr != nil {
		return nil, verr
	}
	err := uc.tx.Run(ctx, func(suppliers repository.SupplierRepository, _ repository.PurchaseRepository) error {
		if err := suppliers.Create(ctx, supplier); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return domain.Duplicate("Ya existe un proveedor registrado con el NIT %s", taxID)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, domain.Internal(err)
	}
	return supplier, nil
}

// Update aplica solo los campos presentes en in.
func (uc *SupplierUseCase) Update(ctx context.Context, id int64, in dto.UpdateSupplierRequest) (*entity.Supplier, error) {
	patch := domainproc.SupplierPatch{Name: in.Name, Address: in.Address, Phone: in.Phone, Email: in.Email}
	var out *entity.Supplier
	err := uc.tx.Run(ctx, func(suppliers repository.SupplierRepository, _ repository.PurchaseRepository) error {
		s, err := findSupplier(ctx, suppliers, id)
		if err != nil {
			return err
		}
		if verr := domainproc.ValidateSupplierUpdate(patch); verr != nil {
			return verr
		}
		patch.Apply(s)
		if verr := domainproc.ValidateSupplierLengths(s); verr != nil {
			return verr
		}
		if err := suppliers.Update(ctx, s); err != nil {
			return err
		}
		out = s
		return nil
	})
	if err != nil {
		return nil, domain.Internal(err)
	}
	return out, nil
}

// Delete elimina el proveedor si no tiene compras asociadas (CONSTRAINT_ERROR en caso contrario).
func (uc *SupplierUseCase) Delete(ctx context.Context, id int64) error {
	err := uc.tx.Run(ctx, func(suppliers repository.SupplierRepository, purchases repository.PurchaseRepository) error {
		if _, err := findSupplier(ctx, suppliers, id); err != nil {
			return err
		}
		n, err := purchases.CountBySupplier(ctx, id)
		if err != nil {
			return err
		}
		if verr := domainproc.ValidateSupplierDeletable(n); verr != nil {
			return verr
		}
		if err := suppliers.Delete(ctx, id); err != nil {
			// Una compra creada en paralelo después del conteo.
			if errors.Is(err, domain.ErrForeignKey) {
				return domain.Constraint("No se puede eliminar el proveedor porque tiene compras asociadas. Elimine primero las compras.")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.Internal(err)
	}
	return nil
}

func findSupplier(ctx context.Context, suppliers repository.SupplierRepository, id int64) (*entity.Supplier, error) {
	s, err := suppliers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.NotFound("No se encontró el proveedor con ID %d", id)
	}
	return s, nil
}
