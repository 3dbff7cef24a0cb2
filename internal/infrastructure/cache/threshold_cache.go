// Package cache decoradores de repositorios respaldados por Redis.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/stock-alerts/internal/domain/repository"
)

const thresholdTTL = 10 * time.Minute

var _ repository.ThresholdRepository = (*ThresholdCache)(nil)

// ThresholdCache envuelve un ThresholdRepository con una caché en Redis.
// Si el cliente es nil (Redis no configurado) delega siempre al repositorio.
type ThresholdCache struct {
	inner  repository.ThresholdRepository
	client *redis.Client
}

func NewThresholdCache(inner repository.ThresholdRepository, client *redis.Client) *ThresholdCache {
	return &ThresholdCache{inner: inner, client: client}
}

func thresholdKey(companyID string) string {
	return fmt.Sprintf("stockalerts:thresholds:%s", companyID)
}

func (c *ThresholdCache) GetOverrides(ctx context.Context, companyID string) (map[string]int, error) {
	if c.client == nil {
		return c.inner.GetOverrides(ctx, companyID)
	}

	key := thresholdKey(companyID)
	if data, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var overrides map[string]int
		if err := json.Unmarshal(data, &overrides); err == nil {
			return overrides, nil
		}
		// Entrada corrupta: se descarta y se vuelve a la base de datos.
		c.client.Del(ctx, key)
	}

	overrides, err := c.inner.GetOverrides(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(overrides); err == nil {
		c.client.Set(ctx, key, data, thresholdTTL)
	}
	return overrides, nil
}

func (c *ThresholdCache) Replace(ctx context.Context, companyID string, overrides map[string]int) error {
	if err := c.inner.Replace(ctx, companyID, overrides); err != nil {
		return err
	}
	if c.client != nil {
		c.client.Del(ctx, thresholdKey(companyID))
	}
	return nil
}
