package entity

import "time"

// Supplier representa un proveedor de productos de una empresa.
type Supplier struct {
	ID          string
	CompanyID   string
	Name        string
	ContactName string
	Email       string
	Phone       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
