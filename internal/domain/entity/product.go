package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo (multi-bodega).
// El stock se maneja por bodega en InventoryRecord.
//
// IsActive nil se trata como activo: los productos creados antes de introducir
// el flag no lo tienen seteado y deben seguir apareciendo en las alertas.
type Product struct {
	ID          string
	CompanyID   string
	SKU         string // código único por empresa, normalizado a mayúsculas
	Name        string
	Price       decimal.Decimal
	ProductType string  // electronics, clothing, food u otro tag libre
	SupplierID  *string // nil = sin proveedor asociado
	IsActive    *bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Active informa si el producto cuenta como activo (flag true o sin setear).
func (p *Product) Active() bool {
	return p.IsActive == nil || *p.IsActive
}
