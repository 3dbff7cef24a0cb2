package alerts

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-alerts/internal/application/dto"
	"github.com/jhoicas/stock-alerts/internal/domain/entity"
)

// UnknownSupplierName sentinel cuando el producto no tiene proveedor o la
// referencia no resuelve. La forma de salida siempre va completa.
const UnknownSupplierName = "Unknown Supplier"

var windowLength = decimal.NewFromInt(WindowDays)

// RankAlerts computa la urgencia de cada candidato, los ordena y trunca al
// límite pedido. Devuelve las alertas ordenadas y el total antes de truncar.
//
// Por candidato:
//   - velocidad diaria = totalSold / 30. El divisor es fijo aunque exista
//     menos historia que la ventana, igual que en la fuente original; con
//     historia corta la velocidad queda subestimada.
//   - daysUntilStockout = round(stock / velocidad); nil cuando la velocidad
//     es cero ("no calculable", no es un error).
//   - sortPriority = stock / umbral; menor = más urgente. El umbral siempre
//     es > 0 (tabla por defecto y validación de overrides).
//
// Orden: sortPriority ascendente; empates por daysUntilStockout ascendente con
// nil al final (un stockout indeterminado es menos urgente que uno calculado).
func RankAlerts(
	candidates []Candidate,
	warehouses map[string]*entity.Warehouse,
	suppliers map[string]*entity.Supplier,
	limit int,
) ([]dto.AlertDTO, int) {
	alerts := make([]dto.AlertDTO, 0, len(candidates))
	for _, c := range candidates {
		dailyAvg := c.TotalSold.Div(windowLength)

		var days *int64
		if dailyAvg.IsPositive() {
			d := c.Record.Quantity.Div(dailyAvg).Round(0).IntPart()
			days = &d
		}

		priority := c.Record.Quantity.Div(decimal.NewFromInt(int64(c.Threshold)))

		alerts = append(alerts, dto.AlertDTO{
			ProductID:           c.Product.ID,
			ProductName:         c.Product.Name,
			SKU:                 c.Product.SKU,
			ProductType:         c.Product.ProductType,
			WarehouseID:         c.Record.WarehouseID,
			WarehouseName:       warehouseName(c.Record.WarehouseID, warehouses),
			CurrentStock:        c.Record.Quantity,
			Threshold:           c.Threshold,
			TotalSoldLast30Days: c.TotalSold,
			SalesCount:          c.SalesCount,
			DaysUntilStockout:   days,
			Supplier:            resolveSupplier(c.Product.SupplierID, suppliers),
			SortPriority:        priority,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return moreUrgent(alerts[i], alerts[j])
	})

	total := len(alerts)
	if limit > 0 && len(alerts) > limit {
		alerts = alerts[:limit]
	}
	return alerts, total
}

// moreUrgent orden total: prioridad ascendente, empates por días hasta
// stockout ascendente con nil al final.
func moreUrgent(a, b dto.AlertDTO) bool {
	if cmp := a.SortPriority.Cmp(b.SortPriority); cmp != 0 {
		return cmp < 0
	}
	switch {
	case a.DaysUntilStockout == nil:
		return false
	case b.DaysUntilStockout == nil:
		return true
	default:
		return *a.DaysUntilStockout < *b.DaysUntilStockout
	}
}

// warehouseName resolve-or-default: bodega no resuelta devuelve cadena vacía
// en lugar de omitir el campo.
func warehouseName(id string, warehouses map[string]*entity.Warehouse) string {
	if w, ok := warehouses[id]; ok {
		return w.Name
	}
	return ""
}

// resolveSupplier resolve-or-default: devuelve siempre un resumen completo.
// Sin proveedor, o con referencia rota, aplica el sentinel.
func resolveSupplier(id *string, suppliers map[string]*entity.Supplier) dto.SupplierSummaryDTO {
	if id != nil {
		if s, ok := suppliers[*id]; ok {
			summary := dto.SupplierSummaryDTO{ID: &s.ID, Name: s.Name}
			if s.Email != "" {
				summary.ContactEmail = &s.Email
			}
			return summary
		}
	}
	return dto.SupplierSummaryDTO{Name: UnknownSupplierName}
}
