package repository

import (
	"context"

	"github.com/jhoicas/gestor-irrigacion/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para proveedores.
type SupplierRepository interface {
	Create(ctx context.Context, s *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	GetByCUIT(ctx context.Context, cuit string) (*entity.Supplier, error)
	// List ordena por razón social.
	List(ctx context.Context) ([]*entity.Supplier, error)
}
