package repository

import (
	"context"

	"github.com/jhoicas/stock-alerts/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	GetByID(ctx context.Context, id string) (*entity.Warehouse, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Warehouse, error)

	// ListByIDs devuelve las bodegas indicadas; IDs inexistentes se omiten
	// en silencio (el enriquecimiento de alertas usa un sentinel).
	ListByIDs(ctx context.Context, ids []string) ([]*entity.Warehouse, error)
}
