package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-alerts/internal/application/dto"
	"github.com/jhoicas/stock-alerts/internal/domain"
	"github.com/jhoicas/stock-alerts/internal/domain/repository"
)

// ThresholdUseCase gestiona los umbrales de stock bajo por empresa: lectura
// del mapa efectivo (overrides mezclados sobre la tabla por defecto) y
// reemplazo del conjunto de overrides.
type ThresholdUseCase struct {
	companyRepo   repository.CompanyRepository
	thresholdRepo repository.ThresholdRepository
}

// NewThresholdUseCase construye el caso de uso.
func NewThresholdUseCase(
	companyRepo repository.CompanyRepository,
	thresholdRepo repository.ThresholdRepository,
) *ThresholdUseCase {
	return &ThresholdUseCase{companyRepo: companyRepo, thresholdRepo: thresholdRepo}
}

// GetEffective devuelve el mapa efectivo tipo → umbral de la empresa.
func (uc *ThresholdUseCase) GetEffective(ctx context.Context, companyID string) (*dto.EffectiveThresholdsDTO, error) {
	if err := uc.checkCompany(ctx, companyID); err != nil {
		return nil, err
	}
	overrides, err := uc.thresholdRepo.GetOverrides(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("umbrales de %s: %w: %v", companyID, domain.ErrDataAccess, err)
	}

	overridden := make([]string, 0, len(overrides))
	for t := range overrides {
		overridden = append(overridden, t)
	}
	sort.Strings(overridden)

	return &dto.EffectiveThresholdsDTO{
		CompanyID:  companyID,
		Thresholds: domain.EffectiveThresholds(overrides),
		Overridden: overridden,
	}, nil
}

// ReplaceOverrides reemplaza los overrides de la empresa con las entradas
// válidas del payload: clave en las cuatro categorías reconocidas y valor
// numérico entero positivo. Todo lo demás se descarta en silencio; un payload
// que queda vacío tras el filtrado se acepta como actualización vacía (borra
// los overrides), no se rechaza.
func (uc *ThresholdUseCase) ReplaceOverrides(ctx context.Context, companyID string, payload map[string]any) (*dto.ThresholdUpdateResultDTO, error) {
	if err := uc.checkCompany(ctx, companyID); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, domain.ErrInvalidConfiguration
	}

	overrides := make(map[string]int, len(payload))
	for key, raw := range payload {
		if !domain.RecognizedType(key) {
			continue
		}
		value, ok := raw.(float64) // json.Unmarshal entrega números como float64
		if !ok || value <= 0 || value != math.Trunc(value) {
			continue
		}
		overrides[key] = int(value)
	}

	if err := uc.thresholdRepo.Replace(ctx, companyID, overrides); err != nil {
		return nil, fmt.Errorf("reemplazar umbrales de %s: %w: %v", companyID, domain.ErrDataAccess, err)
	}
	return &dto.ThresholdUpdateResultDTO{CompanyID: companyID, Overrides: overrides}, nil
}

func (uc *ThresholdUseCase) checkCompany(ctx context.Context, companyID string) error {
	if _, err := uuid.Parse(companyID); err != nil {
		return fmt.Errorf("company_id: %w", domain.ErrInvalidIdentifier)
	}
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return fmt.Errorf("empresa %s: %w: %v", companyID, domain.ErrDataAccess, err)
	}
	if company == nil {
		return fmt.Errorf("empresa %s: %w", companyID, domain.ErrNotFound)
	}
	return nil
}
