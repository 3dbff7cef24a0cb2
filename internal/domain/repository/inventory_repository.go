package repository

import (
	"context"

	"github.com/jhoicas/stock-alerts/internal/domain/entity"
)

// InventoryRepository define el puerto para el stock por (producto, bodega) (DIP).
type InventoryRepository interface {
	Upsert(ctx context.Context, record *entity.InventoryRecord) error

	// ListByCompany devuelve los registros de inventario de todos los productos
	// de la empresa. warehouseID vacío = todas las bodegas.
	ListByCompany(ctx context.Context, companyID, warehouseID string) ([]*entity.InventoryRecord, error)
}
