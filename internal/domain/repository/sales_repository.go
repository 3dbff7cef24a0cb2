package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stock-alerts/internal/domain/entity"
)

// SalesRepository define el puerto de lectura/escritura del log de ventas (DIP).
type SalesRepository interface {
	Create(ctx context.Context, sale *entity.SaleEvent) error

	// ListSince devuelve los eventos de venta de la empresa con sold_at >= since.
	// El predicado de ventana se empuja a la consulta; la agregación por
	// (producto, bodega) es responsabilidad del pipeline de alertas.
	// warehouseID vacío = todas las bodegas.
	ListSince(ctx context.Context, companyID string, since time.Time, warehouseID string) ([]*entity.SaleEvent, error)
}
