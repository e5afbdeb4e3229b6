package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/tailor"
	"tailoring/internal/core/ports"
	"tailoring/internal/pkg/metrics"

	"go.uber.org/zap"
)

const tailorCacheName = "tailors"

type cachedTailor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// TailorDirectory answers tailor lookups from the cache and falls back to the source directory
// on a miss. Cache failures are logged and never fail the lookup; missing tailors are not cached.
type TailorDirectory struct {
	store  Store
	source ports.TailorDirectory
	ttl    time.Duration
	logger *zap.Logger
}

func NewTailorDirectory(store Store, source ports.TailorDirectory, ttl time.Duration, logger *zap.Logger) *TailorDirectory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TailorDirectory{store: store, source: source, ttl: ttl, logger: logger}
}

func (d *TailorDirectory) Get(ctx context.Context, id kernel.UUID) (*tailor.Tailor, error) {
	key := tailorKey(id)

	raw, err := d.store.Get(ctx, key)
	switch {
	case err == nil:
		if t, decodeErr := decodeTailor(raw); decodeErr == nil {
			metrics.CacheRequestsTotal.WithLabelValues(tailorCacheName, "hit").Inc()
			return t, nil
		}
		d.logger.Warn("dropping undecodable cache entry", zap.String("key", key))
		_ = d.store.Delete(ctx, key)
		metrics.CacheRequestsTotal.WithLabelValues(tailorCacheName, "error").Inc()
	case errors.Is(err, ErrCacheMiss):
		metrics.CacheRequestsTotal.WithLabelValues(tailorCacheName, "miss").Inc()
	default:
		d.logger.Warn("tailor cache unavailable", zap.String("key", key), zap.Error(err))
		metrics.CacheRequestsTotal.WithLabelValues(tailorCacheName, "error").Inc()
	}

	t, err := d.source.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if encoded, encodeErr := json.Marshal(cachedTailor{ID: t.ID().String(), Name: t.Name(), Phone: t.Phone()}); encodeErr == nil {
		if setErr := d.store.Set(ctx, key, encoded, d.ttl); setErr != nil {
			d.logger.Warn("failed to cache tailor", zap.String("key", key), zap.Error(setErr))
		}
	}
	return t, nil
}

func tailorKey(id kernel.UUID) string {
	return "tailor:" + id.String()
}

func decodeTailor(raw []byte) (*tailor.Tailor, error) {
	var c cachedTailor
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	id, err := kernel.UUIDFromString(c.ID)
	if err != nil {
		return nil, err
	}
	return tailor.RestoreTailor(id, c.Name, c.Phone)
}
