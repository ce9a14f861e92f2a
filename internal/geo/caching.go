package geo

import (
	"context"
	"time"

	"github.com/hammamikhairi/nextday/internal/cache"
	"github.com/hammamikhairi/nextday/internal/domain"
	"github.com/hammamikhairi/nextday/internal/logger"
)

// Compile-time interface check.
var _ domain.Geocoder = (*CachingGeocoder)(nil)

// CachingGeocoder remembers successful lookups keyed by the six-decimal
// coordinate string. Failures are not cached.
type CachingGeocoder struct {
	next  domain.Geocoder
	cache *cache.Cache[string]
	log   *logger.Logger
}

// NewCachingGeocoder wraps next with a cache whose entries live for ttl.
func NewCachingGeocoder(next domain.Geocoder, ttl time.Duration, log *logger.Logger) *CachingGeocoder {
	return &CachingGeocoder{
		next:  next,
		cache: cache.New[string](ttl, cache.DefaultCleanupInterval),
		log:   log,
	}
}

// ReverseGeocode serves from the cache or delegates.
func (g *CachingGeocoder) ReverseGeocode(ctx context.Context, pos domain.LatLng) (string, error) {
	key := pos.Coordinates()
	if addr, ok := g.cache.Get(key); ok {
		g.log.Debug("geocode cache hit %s", key)
		return addr, nil
	}

	addr, err := g.next.ReverseGeocode(ctx, pos)
	if err != nil {
		return "", err
	}
	g.cache.Set(key, addr)
	return addr, nil
}
