package repository

import "context"

// ThresholdRepository define el puerto para los overrides de umbral por empresa (DIP).
type ThresholdRepository interface {
	// GetOverrides devuelve el mapa tipo → umbral configurado por la empresa.
	// Empresa sin overrides devuelve un mapa vacío, no un error.
	GetOverrides(ctx context.Context, companyID string) (map[string]int, error)

	// Replace reemplaza atómicamente el conjunto completo de overrides de la
	// empresa por el indicado. Un mapa vacío borra todos los overrides.
	Replace(ctx context.Context, companyID string, overrides map[string]int) error
}
