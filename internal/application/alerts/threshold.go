package alerts

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-alerts/internal/domain"
)

// ApplyThresholds resuelve el umbral efectivo de cada candidato (override de
// la empresa sobre la tabla por defecto; tipo desconocido cae a "other") y
// retiene solo los que tienen stock actual <= umbral. La comparación es
// inclusiva: stock exactamente igual al umbral es alerta.
func ApplyThresholds(candidates []Candidate, effective map[string]int) []Candidate {
	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		threshold := domain.ThresholdFor(effective, c.Product.ProductType)
		if c.Record.Quantity.LessThanOrEqual(decimal.NewFromInt(int64(threshold))) {
			c.Threshold = threshold
			out = append(out, c)
		}
	}
	return out
}
