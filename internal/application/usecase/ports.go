package usecase

import (
	"context"

	"github.com/jhoicas/stock-alerts/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el producto y su registro de
// inventario inicial se persistan juntos o no se persistan.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
	) error) error
}
