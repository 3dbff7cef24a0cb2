package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest entrada para registrar un evento de venta.
// SoldAt vacío usa la hora del servidor.
type RecordSaleRequest struct {
	ProductID   string          `json:"product_id" validate:"required"`
	WarehouseID string          `json:"warehouse_id" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	SoldAt      *time.Time      `json:"sold_at"`
}

// SaleResponse salida de un evento de venta registrado.
type SaleResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	ProductID   string          `json:"product_id"`
	WarehouseID string          `json:"warehouse_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	SoldAt      time.Time       `json:"sold_at"`
}

// UpsertInventoryRequest entrada para fijar el stock de un (producto, bodega).
type UpsertInventoryRequest struct {
	ProductID   string          `json:"product_id" validate:"required"`
	WarehouseID string          `json:"warehouse_id" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// InventoryRecordResponse salida de un registro de inventario.
type InventoryRecordResponse struct {
	ProductID   string          `json:"product_id"`
	WarehouseID string          `json:"warehouse_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
