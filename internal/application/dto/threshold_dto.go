package dto

// EffectiveThresholdsDTO mapa efectivo tipo → umbral de una empresa
// (overrides mezclados sobre la tabla por defecto).
type EffectiveThresholdsDTO struct {
	CompanyID  string         `json:"company_id"`
	Thresholds map[string]int `json:"thresholds"`
	Overridden []string       `json:"overridden"` // tipos con override propio, orden alfabético
}

// ThresholdUpdateResultDTO resultado de reemplazar los overrides de una empresa.
type ThresholdUpdateResultDTO struct {
	CompanyID string         `json:"company_id"`
	Overrides map[string]int `json:"overrides"` // overrides almacenados tras el filtrado
}
