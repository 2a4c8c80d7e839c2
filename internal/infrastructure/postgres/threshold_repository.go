package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestor-irrigacion/internal/domain"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/entity"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/repository"
)

var _ repository.ThresholdRepository = (*ThresholdRepo)(nil)

// ThresholdRepo topes de contratación (tabla config_topes).
type ThresholdRepo struct {
	q Querier
}

// NewThresholdRepository construye el adaptador. Pasar pool o tx (Querier).
func NewThresholdRepository(q Querier) *ThresholdRepo {
	return &ThresholdRepo{q: q}
}

// List devuelve todos los topes ordenados por monto máximo.
func (r *ThresholdRepo) List(ctx context.Context) ([]entity.MonetaryThreshold, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, tipo_contratacion, monto_maximo, updated_at
		FROM config_topes ORDER BY monto_maximo`)
	if err != nil {
		return nil, persistenceErr("listar topes", err)
	}
	defer rows.Close()

	var list []entity.MonetaryThreshold
	for rows.Next() {
		t, err := scanThreshold(rows)
		if err != nil {
			return nil, persistenceErr("scan tope", err)
		}
		list = append(list, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, persistenceErr("listar topes", err)
	}
	return list, nil
}

// GetByID obtiene un tope; (nil, nil) si no existe.
func (r *ThresholdRepo) GetByID(ctx context.Context, id int) (*entity.MonetaryThreshold, error) {
	t, err := scanThreshold(r.q.QueryRow(ctx, `
		SELECT id, tipo_contratacion, monto_maximo, updated_at
		FROM config_topes WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, persistenceErr("get tope", err)
	}
	return t, nil
}

// UpdateCeiling cambia el monto máximo; domain.ErrNotFound si el id no existe.
func (r *ThresholdRepo) UpdateCeiling(ctx context.Context, id int, ceiling decimal.Decimal) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE config_topes SET monto_maximo = $2, updated_at = now()
		WHERE id = $1`, id, ceiling)
	if err != nil {
		return ceilingErr("update tope", ceiling, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Upsert crea o actualiza el tope por tipo de contratación.
func (r *ThresholdRepo) Upsert(ctx context.Context, categoryLabel string, ceiling decimal.Decimal) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO config_topes (tipo_contratacion, monto_maximo)
		VALUES ($1, $2)
		ON CONFLICT (tipo_contratacion)
		DO UPDATE SET monto_maximo = EXCLUDED.monto_maximo, updated_at = now()`,
		categoryLabel, ceiling)
	if err != nil {
		return ceilingErr("upsert tope", ceiling, err)
	}
	return nil
}

// ceilingErr traduce la violación del índice único de monto_maximo a domain.ErrValidation.
func ceilingErr(op string, ceiling decimal.Decimal, err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: ya existe un tope con monto %s", domain.ErrValidation, ceiling.StringFixed(2))
	}
	return persistenceErr(op, err)
}

func scanThreshold(row pgxScanner) (*entity.MonetaryThreshold, error) {
	var t entity.MonetaryThreshold
	if err := row.Scan(&t.ID, &t.CategoryLabel, &t.CeilingAmount, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
