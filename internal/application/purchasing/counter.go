package purchasing

import (
	"context"

	"github.com/jhoicas/gestor-irrigacion/internal/domain/procurement"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/repository"
)

// Numbering numeración asignada a una OC.
type Numbering struct {
	SequenceNumber string // numero_oc "NN/YYYY", de presentación
	SequenceIndex  int64  // pedido_nro, global y estrictamente creciente
}

// OrderCounter calcula la numeración de la próxima OC a partir del repositorio
// (ligado a la transacción en curso).
type OrderCounter struct {
	repo repository.PurchaseOrderRepository
}

// NewOrderCounter construye el contador sobre el repo de la transacción.
func NewOrderCounter(repo repository.PurchaseOrderRepository) *OrderCounter {
	return &OrderCounter{repo: repo}
}

// Reserve toma el lock de numeración y devuelve los números siguientes.
// El lock dura hasta el commit o rollback de la transacción.
func (c *OrderCounter) Reserve(ctx context.Context, year int) (Numbering, error) {
	if err := c.repo.LockNumbering(ctx); err != nil {
		return Numbering{}, err
	}
	return c.Peek(ctx, year)
}

// Peek calcula la numeración siguiente sin bloquear (borradores).
func (c *OrderCounter) Peek(ctx context.Context, year int) (Numbering, error) {
	last, err := c.repo.MostRecentNumberForYear(ctx, year)
	if err != nil {
		return Numbering{}, err
	}
	maxIdx, err := c.repo.MaxSequenceIndex(ctx)
	if err != nil {
		return Numbering{}, err
	}
	return Numbering{
		SequenceNumber: procurement.NextOrderNumber(last, year),
		SequenceIndex:  procurement.NextSequenceIndex(maxIdx),
	}, nil
}
