package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stock-alerts/internal/domain/repository"
)

var _ repository.ThresholdRepository = (*ThresholdRepo)(nil)

// ThresholdRepo implementación de ThresholdRepository sobre PostgreSQL.
// Necesita el pool (no un Querier) porque Replace abre su propia transacción.
type ThresholdRepo struct {
	pool *pgxpool.Pool
}

// NewThresholdRepository construye el adaptador de umbrales por empresa.
func NewThresholdRepository(pool *pgxpool.Pool) *ThresholdRepo {
	return &ThresholdRepo{pool: pool}
}

// GetOverrides devuelve el mapa tipo → umbral configurado por la empresa.
func (r *ThresholdRepo) GetOverrides(ctx context.Context, companyID string) (map[string]int, error) {
	query := `
		SELECT product_type, threshold
		FROM company_thresholds WHERE company_id = $1`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("get threshold overrides: %w", err)
	}
	defer rows.Close()

	overrides := make(map[string]int)
	for rows.Next() {
		var productType string
		var threshold int
		if err := rows.Scan(&productType, &threshold); err != nil {
			return nil, fmt.Errorf("scan threshold override: %w", err)
		}
		overrides[productType] = threshold
	}
	return overrides, rows.Err()
}

// Replace reemplaza el conjunto completo de overrides de la empresa en una
// sola transacción (delete + insert). Un mapa vacío deja a la empresa con la
// tabla por defecto.
func (r *ThresholdRepo) Replace(ctx context.Context, companyID string, overrides map[string]int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace thresholds: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM company_thresholds WHERE company_id = $1`, companyID); err != nil {
		return fmt.Errorf("delete threshold overrides: %w", err)
	}
	now := time.Now()
	for productType, threshold := range overrides {
		_, err := tx.Exec(ctx, `
			INSERT INTO company_thresholds (company_id, product_type, threshold, updated_at)
			VALUES ($1, $2, $3, $4)`,
			companyID, productType, threshold, now,
		)
		if err != nil {
			return fmt.Errorf("insert threshold override: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit replace thresholds: %w", err)
	}
	return nil
}
