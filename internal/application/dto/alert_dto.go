package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierSummaryDTO resumen del proveedor adjunto a cada alerta.
// Siempre viene completamente poblado: si el producto no tiene proveedor (o la
// referencia no resuelve), ID/ContactEmail son null y Name es el sentinel
// "Unknown Supplier".
type SupplierSummaryDTO struct {
	ID           *string `json:"id"`
	Name         string  `json:"name"`
	ContactEmail *string `json:"contact_email"`
}

// AlertDTO una alerta de stock bajo para un (producto, bodega).
// Es un resultado de cómputo, no se persiste.
type AlertDTO struct {
	ProductID           string             `json:"product_id"`
	ProductName         string             `json:"product_name"`
	SKU                 string             `json:"sku"`
	ProductType         string             `json:"product_type"`
	WarehouseID         string             `json:"warehouse_id"`
	WarehouseName       string             `json:"warehouse_name"`
	CurrentStock        decimal.Decimal    `json:"current_stock"`
	Threshold           int                `json:"threshold"`
	TotalSoldLast30Days decimal.Decimal    `json:"total_sold_last_30_days"`
	SalesCount          int                `json:"sales_count"`
	DaysUntilStockout   *int64             `json:"days_until_stockout"` // null = no calculable
	Supplier            SupplierSummaryDTO `json:"supplier"`
	SortPriority        decimal.Decimal    `json:"sort_priority"`
}

// AlertFiltersDTO filtros efectivos aplicados al cómputo.
type AlertFiltersDTO struct {
	WarehouseID *string `json:"warehouse_id"`
	ProductType *string `json:"product_type"`
	Limit       int     `json:"limit"`
}

// LowStockResponse resultado ordenado del cómputo de alertas de stock bajo.
type LowStockResponse struct {
	Alerts      []AlertDTO      `json:"alerts"`
	TotalAlerts int             `json:"total_alerts"` // total antes de truncar a Limit
	Filters     AlertFiltersDTO `json:"filters"`
	GeneratedAt time.Time       `json:"generated_at"`
}
