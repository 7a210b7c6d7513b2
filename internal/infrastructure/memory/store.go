// Package memory implementa los puertos de persistencia en memoria, con transacciones por snapshot.
// Sirve para desarrollo local sin PostgreSQL (STORAGE_DRIVER=memory) y para pruebas.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/proveedores-api/internal/application/procurement"
	"github.com/jhoicas/proveedores-api/internal/domain"
	"github.com/jhoicas/proveedores-api/internal/domain/entity"
	"github.com/jhoicas/proveedores-api/internal/domain/repository"
)

var _ procurement.TxRunner = (*Store)(nil)

type state struct {
	suppliers map[int64]entity.Supplier
	purchases map[int64]entity.Purchase // sin LineItems
	items     map[int64]entity.LineItem
	seq       int64
}

func newState() state {
	return state{
		suppliers: map[int64]entity.Supplier{},
		purchases: map[int64]entity.Purchase{},
		items:     map[int64]entity.LineItem{},
	}
}

func (s state) clone() state {
	out := state{
		suppliers: make(map[int64]entity.Supplier, len(s.suppliers)),
		purchases: make(map[int64]entity.Purchase, len(s.purchases)),
		items:     make(map[int64]entity.LineItem, len(s.items)),
		seq:       s.seq,
	}
	for k, v := range s.suppliers {
		out.suppliers[k] = v
	}
	for k, v := range s.purchases {
		out.purchases[k] = v
	}
	for k, v := range s.items {
		out.items[k] = v
	}
	return out
}

// Store guarda proveedores, compras y líneas. Las transacciones se serializan con un mutex:
// cada una trabaja sobre una copia del estado que solo se publica en el commit.
type Store struct {
	mu    sync.Mutex
	state state
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{state: newState()}
}

// Run ejecuta fn sobre una copia del estado y la publica solo si fn retorna nil.
func (s *Store) Run(ctx context.Context, fn procurement.TxFunc) error {
	return s.run(ctx, fn, false)
}

// RunReadOnly ejecuta fn y descarta cualquier cambio.
func (s *Store) RunReadOnly(ctx context.Context, fn procurement.TxFunc) error {
	return s.run(ctx, fn, true)
}

func (s *Store) run(ctx context.Context, fn procurement.TxFunc, readOnly bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &txState{st: s.state.clone()}
	if err := fn(supplierRepo{tx}, purchaseRepo{tx}); err != nil {
		return err
	}
	if !readOnly {
		s.state = tx.st
	}
	return nil
}

// Counts devuelve cuántos proveedores, compras y líneas hay confirmados.
func (s *Store) Counts() (suppliers, purchases, lineItems int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.suppliers), len(s.state.purchases), len(s.state.items)
}

// LineItemCount cuenta las líneas confirmadas de una compra.
func (s *Store) LineItemCount(purchaseID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, it := range s.state.items {
		if it.PurchaseID == purchaseID {
			n++
		}
	}
	return n
}

type txState struct {
	st state
}

func (t *txState) nextID() int64 {
	t.st.seq++
	return t.st.seq
}

// ── Proveedores ──────────────────────────────────────────────────────────────

type supplierRepo struct{ tx *txState }

var _ repository.SupplierRepository = supplierRepo{}

func (r supplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	for _, existing := range r.tx.st.suppliers {
		if existing.TaxID == s.TaxID {
			return domain.ErrDuplicate
		}
	}
	s.ID = r.tx.nextID()
	r.tx.st.suppliers[s.ID] = *s
	return nil
}

func (r supplierRepo) GetByID(_ context.Context, id int64) (*entity.Supplier, error) {
	s, ok := r.tx.st.suppliers[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r supplierRepo) List(_ context.Context) ([]*entity.Supplier, error) {
	out := make([]*entity.Supplier, 0, len(r.tx.st.suppliers))
	for _, s := range r.tx.st.suppliers {
		out = append(out, &s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r supplierRepo) Update(_ context.Context, s *entity.Supplier) error {
	for id, existing := range r.tx.st.suppliers {
		if id != s.ID && existing.TaxID == s.TaxID {
			return domain.ErrDuplicate
		}
	}
	if _, ok := r.tx.st.suppliers[s.ID]; ok {
		r.tx.st.suppliers[s.ID] = *s
	}
	return nil
}

func (r supplierRepo) Delete(_ context.Context, id int64) error {
	for _, p := range r.tx.st.purchases {
		if p.SupplierID == id {
			return domain.ErrForeignKey
		}
	}
	delete(r.tx.st.suppliers, id)
	return nil
}

// ── Compras y líneas ────────────────────────────────────────────────────────

type purchaseRepo struct{ tx *txState }

var _ repository.PurchaseRepository = purchaseRepo{}

func (r purchaseRepo) Create(_ context.Context, p *entity.Purchase) error {
	if _, ok := r.tx.st.suppliers[p.SupplierID]; !ok {
		return domain.ErrForeignKey
	}
	p.ID = r.tx.nextID()
	stored := *p
	stored.LineItems = nil
	r.tx.st.purchases[p.ID] = stored
	return nil
}

func (r purchaseRepo) CreateLineItem(_ context.Context, it *entity.LineItem) error {
	if _, ok := r.tx.st.purchases[it.PurchaseID]; !ok {
		return domain.ErrForeignKey
	}
	it.ID = r.tx.nextID()
	r.tx.st.items[it.ID] = *it
	return nil
}

func (r purchaseRepo) GetByID(_ context.Context, id int64) (*entity.Purchase, error) {
	p, ok := r.tx.st.purchases[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r purchaseRepo) List(_ context.Context) ([]*entity.Purchase, error) {
	out := make([]*entity.Purchase, 0, len(r.tx.st.purchases))
	for _, p := range r.tx.st.purchases {
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r purchaseRepo) ListLineItems(_ context.Context, purchaseIDs ...int64) ([]*entity.LineItem, error) {
	want := make(map[int64]bool, len(purchaseIDs))
	for _, id := range purchaseIDs {
		want[id] = true
	}
	var out []*entity.LineItem
	for _, it := range r.tx.st.items {
		if want[it.PurchaseID] {
			out = append(out, &it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r purchaseRepo) UpdateStatus(_ context.Context, id int64, status string) error {
	p, ok := r.tx.st.purchases[id]
	if !ok {
		return nil
	}
	p.Status = status
	r.tx.st.purchases[id] = p
	return nil
}

func (r purchaseRepo) CountBySupplier(_ context.Context, supplierID int64) (int, error) {
	n := 0
	for _, p := range r.tx.st.purchases {
		if p.SupplierID == supplierID {
			n++
		}
	}
	return n, nil
}

func (r purchaseRepo) DeleteLineItems(_ context.Context, purchaseID int64) (int64, error) {
	var n int64
	for id, it := range r.tx.st.items {
		if it.PurchaseID == purchaseID {
			delete(r.tx.st.items, id)
			n++
		}
	}
	return n, nil
}

func (r purchaseRepo) Delete(_ context.Context, id int64) error {
	for _, it := range r.tx.st.items {
		if it.PurchaseID == id {
			return domain.ErrForeignKey
		}
	}
	delete(r.tx.st.purchases, id)
	return nil
}
