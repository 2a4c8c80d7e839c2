package purchasing_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestor-irrigacion/internal/application/purchasing"
	"github.com/jhoicas/gestor-irrigacion/internal/domain"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/entity"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/repository"
)

// memStore simula la base: datos confirmados + lock de numeración.
type memStore struct {
	mu         sync.Mutex
	numbering  sync.Mutex
	orders     []*entity.PurchaseOrder
	lines      []*entity.OrderLine
	thresholds []entity.MonetaryThreshold
	suppliers  []*entity.Supplier

	failLine   int   // si > 0, CreateLine falla en ese renglón
	thresholdE error // error al listar topes
}

func newStore() *memStore {
	return &memStore{thresholds: []entity.MonetaryThreshold{
		{ID: 1, CategoryLabel: "Contratación directa", CeilingAmount: decimal.RequireFromString("5000000")},
		{ID: 2, CategoryLabel: "Contratación directa con publicación", CeilingAmount: decimal.RequireFromString("15000000")},
		{ID: 3, CategoryLabel: "Licitación pública de menor monto", CeilingAmount: decimal.RequireFromString("50000000")},
		{ID: 4, CategoryLabel: "Licitación pública de mayor monto", CeilingAmount: decimal.RequireFromString("999999999.99")},
	}}
}

func (s *memStore) committedOrders() []*entity.PurchaseOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.PurchaseOrder, len(s.orders))
	copy(out, s.orders)
	return out
}

// RunPurchasing implementa purchasing.PurchasingTxRunner.
func (s *memStore) RunPurchasing(ctx context.Context, fn func(repository.PurchaseOrderRepository, repository.ThresholdRepository) error) error {
	tx := &memOrderRepo{store: s, inTx: true}
	defer func() {
		if tx.locked {
			s.numbering.Unlock()
		}
	}()
	if err := fn(tx, &memThresholdRepo{store: s}); err != nil {
		return err
	}
	s.mu.Lock()
	s.orders = append(s.orders, tx.pendingOrders...)
	s.lines = append(s.lines, tx.pendingLines...)
	s.mu.Unlock()
	return nil
}

type memOrderRepo struct {
	store         *memStore
	inTx          bool
	locked        bool
	pendingOrders []*entity.PurchaseOrder
	pendingLines  []*entity.OrderLine
}

var _ repository.PurchaseOrderRepository = (*memOrderRepo)(nil)

func (r *memOrderRepo) LockNumbering(ctx context.Context) error {
	if !r.inTx {
		return errors.New("lock fuera de transacción")
	}
	if !r.locked {
		r.store.numbering.Lock()
		r.locked = true
	}
	return nil
}

func (r *memOrderRepo) MostRecentNumberForYear(ctx context.Context, year int) (string, error) {
	var best *entity.PurchaseOrder
	for _, o := range r.store.committedOrders() {
		if o.IssueDate.Year() != year {
			continue
		}
		if best == nil || o.IssueDate.After(best.IssueDate) ||
			(o.IssueDate.Equal(best.IssueDate) && o.SequenceIndex > best.SequenceIndex) {
			best = o
		}
	}
	if best == nil {
		return "", nil
	}
	return best.SequenceNumber, nil
}

func (r *memOrderRepo) MaxSequenceIndex(ctx context.Context) (int64, error) {
	var max int64
	for _, o := range r.store.committedOrders() {
		if o.SequenceIndex > max {
			max = o.SequenceIndex
		}
	}
	return max, nil
}

func (r *memOrderRepo) Create(ctx context.Context, o *entity.PurchaseOrder) error {
	for _, existing := range r.store.committedOrders() {
		if existing.SequenceIndex == o.SequenceIndex {
			return domain.ErrDuplicate
		}
	}
	r.pendingOrders = append(r.pendingOrders, o)
	return nil
}

func (r *memOrderRepo) CreateLine(ctx context.Context, l *entity.OrderLine) error {
	if r.store.failLine > 0 && l.LineNumber == r.store.failLine {
		return errors.Join(domain.ErrPersistence, errors.New("conexión perdida"))
	}
	r.pendingLines = append(r.pendingLines, l)
	return nil
}

func (r *memOrderRepo) GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	for _, o := range r.store.committedOrders() {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (r *memOrderRepo) GetLines(ctx context.Context, orderID string) ([]*entity.OrderLine, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.OrderLine
	for _, l := range r.store.lines {
		if l.OrderID == orderID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LineNumber < out[j].LineNumber })
	return out, nil
}

func (r *memOrderRepo) List(ctx context.Context, limit, offset int) ([]*entity.PurchaseOrder, error) {
	all := r.store.committedOrders()
	sort.Slice(all, func(i, j int) bool { return all[i].SequenceIndex > all[j].SequenceIndex })
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

type memThresholdRepo struct{ store *memStore }

var _ repository.ThresholdRepository = (*memThresholdRepo)(nil)

func (r *memThresholdRepo) List(ctx context.Context) ([]entity.MonetaryThreshold, error) {
	if r.store.thresholdE != nil {
		return nil, r.store.thresholdE
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]entity.MonetaryThreshold, len(r.store.thresholds))
	copy(out, r.store.thresholds)
	return out, nil
}

func (r *memThresholdRepo) GetByID(ctx context.Context, id int) (*entity.MonetaryThreshold, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, t := range r.store.thresholds {
		if t.ID == id {
			t := t
			return &t, nil
		}
	}
	return nil, nil
}

func (r *memThresholdRepo) UpdateCeiling(ctx context.Context, id int, ceiling decimal.Decimal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.thresholds {
		if r.store.thresholds[i].ID == id {
			r.store.thresholds[i].CeilingAmount = ceiling
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memThresholdRepo) Upsert(ctx context.Context, label string, ceiling decimal.Decimal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.thresholds {
		if r.store.thresholds[i].CategoryLabel == label {
			r.store.thresholds[i].CeilingAmount = ceiling
			return nil
		}
	}
	r.store.thresholds = append(r.store.thresholds, entity.MonetaryThreshold{
		ID: len(r.store.thresholds) + 1, CategoryLabel: label, CeilingAmount: ceiling,
	})
	return nil
}

type memSupplierRepo struct{ store *memStore }

var _ repository.SupplierRepository = (*memSupplierRepo)(nil)

func (r *memSupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.suppliers = append(r.store.suppliers, s)
	return nil
}

func (r *memSupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, s := range r.store.suppliers {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *memSupplierRepo) GetByCUIT(ctx context.Context, c string) (*entity.Supplier, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, s := range r.store.suppliers {
		if s.CUIT == c {
			return s, nil
		}
	}
	return nil, nil
}

func (r *memSupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*entity.Supplier, len(r.store.suppliers))
	copy(out, r.store.suppliers)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// memSummaryRepo agrupa las OC confirmadas del año.
type memSummaryRepo struct{ store *memStore }

func (r *memSummaryRepo) SummaryByCategory(ctx context.Context, year int) ([]repository.CategorySummary, error) {
	byLabel := map[string]*repository.CategorySummary{}
	var labels []string
	for _, o := range r.store.committedOrders() {
		if o.IssueDate.Year() != year {
			continue
		}
		cs, ok := byLabel[o.CategoryLabel]
		if !ok {
			cs = &repository.CategorySummary{CategoryLabel: o.CategoryLabel, Total: decimal.Zero}
			byLabel[o.CategoryLabel] = cs
			labels = append(labels, o.CategoryLabel)
		}
		cs.OrderCount++
		cs.Total = cs.Total.Add(o.Total)
	}
	sort.Strings(labels)
	out := make([]repository.CategorySummary, 0, len(labels))
	for _, l := range labels {
		out = append(out, *byLabel[l])
	}
	return out, nil
}

// fakeRenderer registra el último documento recibido.
type fakeRenderer struct {
	last *purchasing.Document
	err  error
}

func (f *fakeRenderer) Render(ctx context.Context, doc *purchasing.Document) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.last = doc
	return []byte("%PDF-fake"), nil
}

func (f *fakeRenderer) ContentType() string { return "application/pdf" }
func (f *fakeRenderer) Extension() string   { return "pdf" }
