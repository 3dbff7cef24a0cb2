package domain

// Tipos de producto reconocidos para la configuración de umbrales de stock bajo.
// Cualquier otro tipo usa el umbral de TypeOther.
const (
	TypeElectronics = "electronics"
	TypeClothing    = "clothing"
	TypeFood        = "food"
	TypeOther       = "other"
)

// defaultThresholds tabla fija de umbrales por tipo de producto.
var defaultThresholds = map[string]int{
	TypeElectronics: 50,
	TypeClothing:    20,
	TypeFood:        100,
	TypeOther:       10,
}

// DefaultThresholds devuelve una copia de la tabla de umbrales por defecto.
func DefaultThresholds() map[string]int {
	out := make(map[string]int, len(defaultThresholds))
	for k, v := range defaultThresholds {
		out[k] = v
	}
	return out
}

// RecognizedType informa si el tipo es una de las cuatro categorías válidas.
func RecognizedType(productType string) bool {
	_, ok := defaultThresholds[productType]
	return ok
}

// EffectiveThresholds mezcla los overrides de la empresa sobre la tabla por
// defecto. Un override reemplaza por completo el valor por defecto de su tipo;
// los tipos sin override conservan el valor de la tabla. La precedencia es
// explícita para que sea auditable: nunca se mezclan valores dentro de un tipo.
func EffectiveThresholds(overrides map[string]int) map[string]int {
	out := DefaultThresholds()
	for t, v := range overrides {
		if RecognizedType(t) && v > 0 {
			out[t] = v
		}
	}
	return out
}

// ThresholdFor devuelve el umbral efectivo para un tipo de producto.
// Tipos desconocidos caen al umbral de TypeOther.
func ThresholdFor(effective map[string]int, productType string) int {
	if v, ok := effective[productType]; ok {
		return v
	}
	return effective[TypeOther]
}
