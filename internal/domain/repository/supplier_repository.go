package repository

import (
	"context"

	"github.com/jhoicas/stock-alerts/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Supplier, error)

	// ListByIDs devuelve los proveedores indicados; IDs inexistentes se omiten.
	ListByIDs(ctx context.Context, ids []string) ([]*entity.Supplier, error)
}
