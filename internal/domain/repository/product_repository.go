package repository

import (
	"context"

	"github.com/jhoicas/stock-alerts/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByCompanyAndSKU(ctx context.Context, companyID, sku string) (*entity.Product, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Product, error)

	// ListAllByCompany devuelve todos los productos de la empresa, sin paginar.
	// Es el accessor de lectura del cómputo de alertas: el pipeline filtra
	// activos/tipo en memoria sobre este snapshot.
	ListAllByCompany(ctx context.Context, companyID string) ([]*entity.Product, error)
}
