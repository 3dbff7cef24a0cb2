package alerts

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-alerts/internal/domain/entity"
)

// WindowDays ventana móvil de actividad: solo cuentan las ventas de los
// últimos 30 días. Fija por diseño; no es un parámetro del caller.
const WindowDays = 30

type pairKey struct {
	productID   string
	warehouseID string
}

type salesAgg struct {
	total decimal.Decimal
	count int
}

// FilterByActivity agrega los eventos de venta por (producto, bodega) y
// descarta los candidatos sin ventas en la ventana. Es un filtro duro y
// estrictamente por bodega: ventas abundantes del producto en la bodega A no
// califican al mismo producto en la bodega B. Los eventos ya vienen filtrados
// por ventana desde el accessor de lectura.
func FilterByActivity(candidates []Candidate, sales []*entity.SaleEvent) []Candidate {
	byPair := make(map[pairKey]*salesAgg, len(sales))
	for _, s := range sales {
		k := pairKey{s.ProductID, s.WarehouseID}
		a := byPair[k]
		if a == nil {
			a = &salesAgg{}
			byPair[k] = a
		}
		a.total = a.total.Add(s.Quantity)
		a.count++
	}

	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		a := byPair[pairKey{c.Product.ID, c.Record.WarehouseID}]
		if a == nil || a.count == 0 {
			continue
		}
		c.TotalSold = a.total
		c.SalesCount = a.count
		out = append(out, c)
	}
	return out
}
