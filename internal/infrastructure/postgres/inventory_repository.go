package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-alerts/internal/domain/entity"
	"github.com/jhoicas/stock-alerts/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL
// (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Upsert inserta o actualiza la cantidad en stock (por producto y bodega).
// La tabla tiene constraint único sobre (product_id, warehouse_id): a lo sumo
// un registro por par.
func (r *InventoryRepo) Upsert(ctx context.Context, record *entity.InventoryRecord) error {
	query := `
		INSERT INTO inventory_records (product_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		record.ProductID, record.WarehouseID, record.Quantity, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert inventory record: %w", err)
	}
	return nil
}

// ListByCompany devuelve los registros de inventario de los productos de la
// empresa. warehouseID vacío = todas las bodegas.
func (r *InventoryRepo) ListByCompany(ctx context.Context, companyID, warehouseID string) ([]*entity.InventoryRecord, error) {
	query := `
		SELECT ir.product_id, ir.warehouse_id, ir.quantity, ir.updated_at
		FROM inventory_records ir
		JOIN products p ON p.id = ir.product_id
		WHERE p.company_id = $1 AND ($2 = '' OR ir.warehouse_id = $2)`
	rows, err := r.q.Query(ctx, query, companyID, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list inventory records: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryRecord
	for rows.Next() {
		var rec entity.InventoryRecord
		if err := rows.Scan(&rec.ProductID, &rec.WarehouseID, &rec.Quantity, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}
