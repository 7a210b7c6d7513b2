package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/proveedores-api/internal/domain"
	"github.com/jhoicas/proveedores-api/internal/domain/entity"
	"github.com/jhoicas/proveedores-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

const (
	purchaseColumns = `id, supplier_id, created_at, total, status`
	lineItemColumns = `id, purchase_id, product_id, quantity, unit_price, subtotal`
)

// PurchaseRepo implementación de PurchaseRepository (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste la cabecera de la compra.
func (r *PurchaseRepo) Create(ctx context.Context, p *entity.Purchase) error {
	query := `
		INSERT INTO purchases (supplier_id, created_at, total, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, p.SupplierID, p.CreatedAt, p.Total, p.Status).Scan(&p.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// CreateLineItem persiste una línea de detalle.
func (r *PurchaseRepo) CreateLineItem(ctx context.Context, it *entity.LineItem) error {
	query := `
		INSERT INTO purchase_line_items (purchase_id, product_id, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, it.PurchaseID, it.ProductID, it.Quantity, it.UnitPrice, it.Subtotal).Scan(&it.ID)
	if err != nil {
		return fmt.Errorf("insert purchase line item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una compra; (nil, nil) si no existe.
func (r *PurchaseRepo) GetByID(ctx context.Context, id int64) (*entity.Purchase, error) {
	var p entity.Purchase
	err := r.q.QueryRow(ctx, `SELECT `+purchaseColumns+` FROM purchases WHERE id = $1`, id).Scan(
		&p.ID, &p.SupplierID, &p.CreatedAt, &p.Total, &p.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	p.CreatedAt = p.CreatedAt.UTC()
	return &p, nil
}

// List devuelve todas las cabeceras ordenadas por ID.
func (r *PurchaseRepo) List(ctx context.Context) ([]*entity.Purchase, error) {
	rows, err := r.q.Query(ctx, `SELECT `+purchaseColumns+` FROM purchases ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	list := []*entity.Purchase{}
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.SupplierID, &p.CreatedAt, &p.Total, &p.Status); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		p.CreatedAt = p.CreatedAt.UTC()
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListLineItems obtiene las líneas de varias compras en una sola consulta.
func (r *PurchaseRepo) ListLineItems(ctx context.Context, purchaseIDs ...int64) ([]*entity.LineItem, error) {
	if len(purchaseIDs) == 0 {
		return []*entity.LineItem{}, nil
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+lineItemColumns+` FROM purchase_line_items WHERE purchase_id = ANY($1) ORDER BY id`,
		purchaseIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("list purchase line items: %w", err)
	}
	defer rows.Close()
	list := []*entity.LineItem{}
	for rows.Next() {
		var it entity.LineItem
		if err := rows.Scan(&it.ID, &it.PurchaseID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan line item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// UpdateStatus cambia solo el estado; total y líneas no se tocan.
func (r *PurchaseRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	if _, err := r.q.Exec(ctx, `UPDATE purchases SET status = $2 WHERE id = $1`, id, status); err != nil {
		return fmt.Errorf("update purchase status: %w", err)
	}
	return nil
}

// CountBySupplier cuenta las compras que referencian al proveedor.
func (r *PurchaseRepo) CountBySupplier(ctx context.Context, supplierID int64) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM purchases WHERE supplier_id = $1`, supplierID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count purchases by supplier: %w", err)
	}
	return n, nil
}

// DeleteLineItems elimina todas las líneas de la compra y devuelve cuántas borró.
func (r *PurchaseRepo) DeleteLineItems(ctx context.Context, purchaseID int64) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM purchase_line_items WHERE purchase_id = $1`, purchaseID)
	if err != nil {
		return 0, fmt.Errorf("delete purchase line items: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Delete elimina la cabecera. Las líneas deben haberse borrado antes en la misma transacción.
func (r *PurchaseRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM purchases WHERE id = $1`, id); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("delete purchase: %w", err)
	}
	return nil
}
