package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto junto con su registro
// de inventario inicial en una bodega.
type CreateProductRequest struct {
	SKU             string          `json:"sku" validate:"required,min=1,max=100"`
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	Price           decimal.Decimal `json:"price"`
	ProductType     string          `json:"product_type"`
	SupplierID      *string         `json:"supplier_id"`
	WarehouseID     string          `json:"warehouse_id" validate:"required"`
	InitialQuantity decimal.Decimal `json:"initial_quantity"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	ProductType string          `json:"product_type"`
	SupplierID  *string         `json:"supplier_id"`
	IsActive    *bool           `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
