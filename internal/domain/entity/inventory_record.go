package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRecord representa el stock actual de un producto en una bodega.
// Existe a lo sumo un registro por (producto, bodega); el cómputo de alertas
// lo trata como un snapshot read-only al momento de la consulta.
type InventoryRecord struct {
	ProductID   string
	WarehouseID string
	Quantity    decimal.Decimal
	UpdatedAt   time.Time
}
