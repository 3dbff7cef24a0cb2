package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stock-alerts/internal/domain/entity"
	"github.com/jhoicas/stock-alerts/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo implementación de SalesRepository sobre PostgreSQL. El log de
// ventas es append-only: no hay update ni delete.
type SalesRepo struct {
	q Querier
}

// NewSalesRepository construye el adaptador del log de ventas.
func NewSalesRepository(q Querier) *SalesRepo {
	return &SalesRepo{q: q}
}

// Create persiste un evento de venta.
func (r *SalesRepo) Create(ctx context.Context, sale *entity.SaleEvent) error {
	query := `
		INSERT INTO sale_events (id, company_id, product_id, warehouse_id, quantity, sold_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.CompanyID, sale.ProductID, sale.WarehouseID,
		sale.Quantity, sale.SoldAt, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale event: %w", err)
	}
	return nil
}

// ListSince devuelve los eventos de la empresa con sold_at >= since.
// warehouseID vacío = todas las bodegas.
func (r *SalesRepo) ListSince(ctx context.Context, companyID string, since time.Time, warehouseID string) ([]*entity.SaleEvent, error) {
	query := `
		SELECT id, company_id, product_id, warehouse_id, quantity, sold_at, created_at
		FROM sale_events
		WHERE company_id = $1 AND sold_at >= $2 AND ($3 = '' OR warehouse_id = $3)`
	rows, err := r.q.Query(ctx, query, companyID, since, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list sale events: %w", err)
	}
	defer rows.Close()

	var list []*entity.SaleEvent
	for rows.Next() {
		var s entity.SaleEvent
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.ProductID, &s.WarehouseID, &s.Quantity, &s.SoldAt, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale event: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
