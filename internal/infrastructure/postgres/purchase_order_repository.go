package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestor-irrigacion/internal/domain"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/entity"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// numberingLockKey clave del advisory lock que serializa las altas de OC.
const numberingLockKey int64 = 0x4F43_0001

const orderColumns = `id, numero_oc, pedido_nro, destino, fecha, expediente_id, resolucion_nro,
	forma_pago, plazo_entrega, es_inscripto, tipo_contratacion, subtotal, iva, total, created_at`

// PurchaseOrderRepo implementación de PurchaseOrderRepository (usable con pool o tx).
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// LockNumbering toma pg_advisory_xact_lock; se libera solo al terminar la transacción.
// Fuera de una transacción no tiene efecto útil.
func (r *PurchaseOrderRepo) LockNumbering(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, numberingLockKey); err != nil {
		return persistenceErr("lock numeración OC", err)
	}
	return nil
}

// MostRecentNumberForYear devuelve el numero_oc de la OC más reciente del año.
func (r *PurchaseOrderRepo) MostRecentNumberForYear(ctx context.Context, year int) (string, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)
	const query = `
		SELECT numero_oc FROM ordenes_compra
		WHERE fecha >= $1 AND fecha < $2
		ORDER BY fecha DESC, pedido_nro DESC
		LIMIT 1`
	var number string
	err := r.q.QueryRow(ctx, query, from, to).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", persistenceErr("última OC del año", err)
	}
	return number, nil
}

// MaxSequenceIndex devuelve el mayor pedido_nro (0 si la tabla está vacía).
func (r *PurchaseOrderRepo) MaxSequenceIndex(ctx context.Context) (int64, error) {
	var max int64
	if err := r.q.QueryRow(ctx, `SELECT COALESCE(MAX(pedido_nro), 0) FROM ordenes_compra`).Scan(&max); err != nil {
		return 0, persistenceErr("max pedido_nro", err)
	}
	return max, nil
}

// Create persiste la cabecera de la OC.
func (r *PurchaseOrderRepo) Create(ctx context.Context, o *entity.PurchaseOrder) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	query := `
		INSERT INTO ordenes_compra (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.SequenceNumber, o.SequenceIndex, o.Destination, o.IssueDate,
		o.CaseFileReference, o.ResolutionReference, o.PaymentTerms, o.DeliveryTerms,
		o.IsTaxRegistered, o.CategoryLabel, o.Subtotal, o.Tax, o.Total, o.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: pedido_nro %d ya existe: %w", domain.ErrDuplicate, o.SequenceIndex, err)
		}
		return persistenceErr("insert orden de compra", err)
	}
	return nil
}

// CreateLine persiste un renglón.
func (r *PurchaseOrderRepo) CreateLine(ctx context.Context, l *entity.OrderLine) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	query := `
		INSERT INTO orden_compra_renglones (id, oc_id, renglon, cantidad, detalle, marca, valor_unitario)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		l.ID, l.OrderID, l.LineNumber, l.Quantity, l.Description, l.Brand, l.UnitPrice,
	)
	if err != nil {
		return persistenceErr("insert renglón", err)
	}
	return nil
}

// GetByID obtiene la cabecera; (nil, nil) si no existe.
func (r *PurchaseOrderRepo) GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	o, err := scanOrder(r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM ordenes_compra WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, persistenceErr("get orden de compra", err)
	}
	return o, nil
}

// GetLines devuelve los renglones ordenados por número.
func (r *PurchaseOrderRepo) GetLines(ctx context.Context, orderID string) ([]*entity.OrderLine, error) {
	const query = `
		SELECT id, oc_id, renglon, cantidad, detalle, marca, valor_unitario
		FROM orden_compra_renglones WHERE oc_id = $1
		ORDER BY renglon`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, persistenceErr("get renglones", err)
	}
	defer rows.Close()

	var lines []*entity.OrderLine
	for rows.Next() {
		var l entity.OrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.LineNumber, &l.Quantity, &l.Description, &l.Brand, &l.UnitPrice); err != nil {
			return nil, persistenceErr("scan renglón", err)
		}
		lines = append(lines, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, persistenceErr("get renglones", err)
	}
	return lines, nil
}

// List devuelve cabeceras por fecha y pedido_nro descendentes.
func (r *PurchaseOrderRepo) List(ctx context.Context, limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM ordenes_compra
		ORDER BY fecha DESC, pedido_nro DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, persistenceErr("listar órdenes de compra", err)
	}
	defer rows.Close()

	var list []*entity.PurchaseOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, persistenceErr("scan orden de compra", err)
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, persistenceErr("listar órdenes de compra", err)
	}
	return list, nil
}

func scanOrder(row pgxScanner) (*entity.PurchaseOrder, error) {
	var o entity.PurchaseOrder
	err := row.Scan(
		&o.ID, &o.SequenceNumber, &o.SequenceIndex, &o.Destination, &o.IssueDate,
		&o.CaseFileReference, &o.ResolutionReference, &o.PaymentTerms, &o.DeliveryTerms,
		&o.IsTaxRegistered, &o.CategoryLabel, &o.Subtotal, &o.Tax, &o.Total, &o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
