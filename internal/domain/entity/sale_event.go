package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleEvent representa una venta registrada de un producto en una bodega.
// Es un log append-only: el cómputo de alertas solo lee los eventos dentro
// de la ventana móvil de actividad.
type SaleEvent struct {
	ID          string
	CompanyID   string
	ProductID   string
	WarehouseID string
	Quantity    decimal.Decimal
	SoldAt      time.Time
	CreatedAt   time.Time
}
