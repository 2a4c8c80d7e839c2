package http_test

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestor-irrigacion/internal/application/purchasing"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/entity"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/repository"
)

// memDB implementa en memoria los puertos que usan los handlers.
type memDB struct {
	tx         sync.Mutex
	mu         sync.Mutex
	orders     []*entity.PurchaseOrder
	lines      []*entity.OrderLine
	thresholds []entity.MonetaryThreshold
	suppliers  []*entity.Supplier
}

func newMemDB() *memDB {
	return &memDB{thresholds: []entity.MonetaryThreshold{
		{ID: 1, CategoryLabel: "Contratación directa", CeilingAmount: decimal.RequireFromString("5000000")},
		{ID: 2, CategoryLabel: "Contratación directa con publicación", CeilingAmount: decimal.RequireFromString("15000000")},
		{ID: 3, CategoryLabel: "Licitación pública de menor monto", CeilingAmount: decimal.RequireFromString("50000000")},
		{ID: 4, CategoryLabel: "Licitación pública de mayor monto", CeilingAmount: decimal.RequireFromString("999999999.99")},
	}}
}

var (
	_ purchasing.PurchasingTxRunner      = (*memDB)(nil)
	_ repository.PurchaseOrderRepository = (*memDB)(nil)
	_ repository.SupplierRepository      = (*supplierRepo)(nil)
	_ repository.ThresholdRepository     = (*thresholdRepo)(nil)
	_ repository.SummaryRepository       = (*memDB)(nil)
)

func (db *memDB) RunPurchasing(ctx context.Context, fn func(repository.PurchaseOrderRepository, repository.ThresholdRepository) error) error {
	db.tx.Lock()
	defer db.tx.Unlock()
	return fn(db, &thresholdRepo{db: db})
}

// ── Órdenes ──────────────────────────────────────────────────────────────────

func (db *memDB) LockNumbering(ctx context.Context) error { return nil }

func (db *memDB) MostRecentNumberForYear(ctx context.Context, year int) (string, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	last := ""
	var idx int64
	for _, o := range db.orders {
		if o.IssueDate.Year() == year && o.SequenceIndex > idx {
			last, idx = o.SequenceNumber, o.SequenceIndex
		}
	}
	return last, nil
}

func (db *memDB) MaxSequenceIndex(ctx context.Context) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	var max int64
	for _, o := range db.orders {
		if o.SequenceIndex > max {
			max = o.SequenceIndex
		}
	}
	return max, nil
}

func (db *memDB) Create(ctx context.Context, o *entity.PurchaseOrder) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.orders = append(db.orders, o)
	return nil
}

func (db *memDB) CreateLine(ctx context.Context, l *entity.OrderLine) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.lines = append(db.lines, l)
	return nil
}

func (db *memDB) GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, o := range db.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (db *memDB) GetLines(ctx context.Context, orderID string) ([]*entity.OrderLine, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	var out []*entity.OrderLine
	for _, l := range db.lines {
		if l.OrderID == orderID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LineNumber < out[j].LineNumber })
	return out, nil
}

func (db *memDB) List(ctx context.Context, limit, offset int) ([]*entity.PurchaseOrder, error) {
	db.mu.Lock()
	all := append([]*entity.PurchaseOrder(nil), db.orders...)
	db.mu.Unlock()
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

func (db *memDB) SummaryByCategory(ctx context.Context, year int) ([]repository.CategorySummary, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	byLabel := map[string]*repository.CategorySummary{}
	var labels []string
	for _, o := range db.orders {
		if o.IssueDate.Year() != year {
			continue
		}
		s, ok := byLabel[o.CategoryLabel]
		if !ok {
			s = &repository.CategorySummary{CategoryLabel: o.CategoryLabel}
			byLabel[o.CategoryLabel] = s
			labels = append(labels, o.CategoryLabel)
		}
		s.OrderCount++
		s.Total = s.Total.Add(o.Total)
	}
	sort.Strings(labels)
	out := make([]repository.CategorySummary, 0, len(labels))
	for _, l := range labels {
		out = append(out, *byLabel[l])
	}
	return out, nil
}

// ── Topes ────────────────────────────────────────────────────────────────────

type thresholdRepo struct{ db *memDB }

func (r *thresholdRepo) List(ctx context.Context) ([]entity.MonetaryThreshold, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return append([]entity.MonetaryThreshold(nil), r.db.thresholds...), nil
}

func (r *thresholdRepo) GetByID(ctx context.Context, id int) (*entity.MonetaryThreshold, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, t := range r.db.thresholds {
		if t.ID == id {
			t := t
			return &t, nil
		}
	}
	return nil, nil
}

func (r *thresholdRepo) UpdateCeiling(ctx context.Context, id int, ceiling decimal.Decimal) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i := range r.db.thresholds {
		if r.db.thresholds[i].ID == id {
			r.db.thresholds[i].CeilingAmount = ceiling
		}
	}
	return nil
}

func (r *thresholdRepo) Upsert(ctx context.Context, label string, ceiling decimal.Decimal) error {
	return nil
}

// ── Proveedores ──────────────────────────────────────────────────────────────

type supplierRepo struct{ db *memDB }

func (r *supplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.suppliers = append(r.db.suppliers, s)
	return nil
}

func (r *supplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, s := range r.db.suppliers {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *supplierRepo) GetByCUIT(ctx context.Context, cuit string) (*entity.Supplier, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, s := range r.db.suppliers {
		if s.CUIT == cuit {
			return s, nil
		}
	}
	return nil, nil
}

func (r *supplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := append([]*entity.Supplier(nil), r.db.suppliers...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// textRenderer genera un documento de texto plano con el número de OC.
type textRenderer struct{}

func (textRenderer) Render(ctx context.Context, doc *purchasing.Document) ([]byte, error) {
	out := "OC " + doc.Order.SequenceNumber
	if doc.Supplier != nil {
		out += " " + doc.Supplier.Name
	}
	return []byte(out), nil
}
func (textRenderer) ContentType() string { return "text/plain" }
func (textRenderer) Extension() string   { return "txt" }
