package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/gestor-irrigacion/internal/domain/repository"
)

var _ repository.SummaryRepository = (*SummaryRepo)(nil)

// SummaryRepo consultas de solo lectura para el resumen anual de compras.
type SummaryRepo struct {
	pool *pgxpool.Pool
}

// NewSummaryRepository construye el adaptador.
func NewSummaryRepository(pool *pgxpool.Pool) *SummaryRepo {
	return &SummaryRepo{pool: pool}
}

// SummaryByCategory agrupa cantidad e importe de OC por tipo de contratación para el año dado.
func (r *SummaryRepo) SummaryByCategory(ctx context.Context, year int) ([]repository.CategorySummary, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)
	const query = `
	SELECT
	    tipo_contratacion,
	    COUNT(*)                AS cantidad,
	    COALESCE(SUM(total), 0) AS total
	FROM ordenes_compra
	WHERE fecha >= $1 AND fecha < $2
	GROUP BY tipo_contratacion
	ORDER BY total DESC, tipo_contratacion`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, persistenceErr("summary.SummaryByCategory", err)
	}
	defer rows.Close()

	var results []repository.CategorySummary
	for rows.Next() {
		var row repository.CategorySummary
		if err := rows.Scan(&row.CategoryLabel, &row.OrderCount, &row.Total); err != nil {
			return nil, persistenceErr("summary.SummaryByCategory scan", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, persistenceErr("summary.SummaryByCategory", err)
	}
	return results, nil
}
