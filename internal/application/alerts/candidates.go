// Package alerts implementa el cómputo de alertas de stock bajo: un pipeline
// de cuatro etapas puras (selección de candidatos → filtro de actividad →
// evaluación de umbral → ranking de urgencia) sobre colecciones en memoria.
// Las etapas no mutan las entidades fuente y se testean de forma aislada.
package alerts

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-alerts/internal/domain/entity"
)

// Candidate par (producto, registro de inventario) en evaluación. Las etapas
// del pipeline lo van enriqueciendo: el filtro de actividad llena TotalSold y
// SalesCount, la evaluación de umbral llena Threshold.
type Candidate struct {
	Product    *entity.Product
	Record     *entity.InventoryRecord
	TotalSold  decimal.Decimal
	SalesCount int
	Threshold  int
}

// BuildCandidates arma el conjunto inicial de candidatos: productos activos
// (flag true o sin setear) de la empresa, emparejados con sus registros de
// inventario. Un producto sin registro de inventario queda excluido — no se
// reporta como alerta de stock cero; ese es un límite de alcance deliberado.
// warehouseID y productType vacíos no filtran.
func BuildCandidates(
	products []*entity.Product,
	records []*entity.InventoryRecord,
	warehouseID, productType string,
) []Candidate {
	byProduct := make(map[string][]*entity.InventoryRecord, len(records))
	for _, r := range records {
		if warehouseID != "" && r.WarehouseID != warehouseID {
			continue
		}
		byProduct[r.ProductID] = append(byProduct[r.ProductID], r)
	}

	var out []Candidate
	for _, p := range products {
		if !p.Active() {
			continue
		}
		if productType != "" && p.ProductType != productType {
			continue
		}
		for _, r := range byProduct[p.ID] {
			out = append(out, Candidate{Product: p, Record: r})
		}
	}
	return out
}
