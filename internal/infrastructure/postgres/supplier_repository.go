package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestor-irrigacion/internal/domain"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/entity"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo proveedores (tabla proveedores).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierColumns = `id, razon_social, cuit, domicilio, created_at, updated_at`

// Create persiste un proveedor; domain.ErrDuplicate si el CUIT ya existe.
func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO proveedores (`+supplierColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.Name, s.CUIT, s.Address, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: CUIT %s", domain.ErrDuplicate, s.CUIT)
		}
		return persistenceErr("insert proveedor", err)
	}
	return nil
}

// GetByID obtiene un proveedor; (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	return r.getOne(ctx, `SELECT `+supplierColumns+` FROM proveedores WHERE id = $1`, id)
}

// GetByCUIT obtiene un proveedor por CUIT normalizado; (nil, nil) si no existe.
func (r *SupplierRepo) GetByCUIT(ctx context.Context, cuit string) (*entity.Supplier, error) {
	return r.getOne(ctx, `SELECT `+supplierColumns+` FROM proveedores WHERE cuit = $1`, cuit)
}

// List devuelve los proveedores ordenados por razón social.
func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(ctx, `SELECT `+supplierColumns+` FROM proveedores ORDER BY razon_social`)
	if err != nil {
		return nil, persistenceErr("listar proveedores", err)
	}
	defer rows.Close()

	var list []*entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, persistenceErr("scan proveedor", err)
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, persistenceErr("listar proveedores", err)
	}
	return list, nil
}

func (r *SupplierRepo) getOne(ctx context.Context, query string, arg any) (*entity.Supplier, error) {
	s, err := scanSupplier(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, persistenceErr("get proveedor", err)
	}
	return s, nil
}

func scanSupplier(row pgxScanner) (*entity.Supplier, error) {
	var s entity.Supplier
	if err := row.Scan(&s.ID, &s.Name, &s.CUIT, &s.Address, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
