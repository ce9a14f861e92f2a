package main

import (
	"github.com/hammamikhairi/nextday/internal/address"
	"github.com/hammamikhairi/nextday/internal/api"
	"github.com/hammamikhairi/nextday/internal/config"
	"github.com/hammamikhairi/nextday/internal/domain"
	"github.com/hammamikhairi/nextday/internal/geo"
	"github.com/hammamikhairi/nextday/internal/logger"
	"github.com/hammamikhairi/nextday/internal/storage"
)

func newClient(cfg *config.Config, log *logger.Logger) *api.Client {
	return api.NewClient(cfg.API.BaseURL, log, api.WithHTTPTimeout(cfg.API.Timeout))
}

// newStore opens the configured session store. The returned func closes it.
func newStore(cfg *config.Config, log *logger.Logger) (domain.SessionStore, func() error, error) {
	if cfg.Storage.Driver == config.StorageSQLite {
		s, err := storage.NewSQLiteStore(cfg.Storage.Path, log)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	}
	return storage.NewMemoryStore(log), func() error { return nil }, nil
}

func newLocator(cfg *config.Config, log *logger.Logger) domain.LocationProvider {
	switch cfg.Geolocation.Mode {
	case config.GeoStatic:
		return geo.Static{Pos: domain.LatLng{Lat: cfg.Geolocation.Lat, Lng: cfg.Geolocation.Lng}}
	case config.GeoOff:
		return geo.Denied{}
	default:
		return geo.NewIPLocator(cfg.Geolocation.Endpoint, log)
	}
}

// newGeocoder returns nil when no maps key is configured, in which case
// addresses fall back to coordinates.
func newGeocoder(cfg *config.Config, log *logger.Logger) domain.Geocoder {
	if cfg.Maps.APIKey == "" {
		log.Info("reverse geocoding disabled: set %s to enable", config.EnvMapsKey)
		return nil
	}
	var opts []geo.GoogleOption
	if cfg.Maps.Language != "" {
		opts = append(opts, geo.WithLanguage(cfg.Maps.Language))
	}
	g := geo.NewGoogleGeocoder(cfg.Maps.APIKey, log, opts...)
	if cfg.Cache.GeocodeTTL <= 0 {
		return g
	}
	return geo.NewCachingGeocoder(g, cfg.Cache.GeocodeTTL, log)
}

// newPicker builds the address picker starting at the configured map
// center and marker.
func newPicker(cfg *config.Config, log *logger.Logger, n domain.Notifier) *address.Picker {
	return address.NewPicker(newLocator(cfg, log), newGeocoder(cfg, log), log,
		address.WithStart(point(cfg.Maps.Center), point(cfg.Maps.Marker)),
		address.WithNotifier(n),
		address.WithLocateTimeout(cfg.Geolocation.Timeout),
	)
}

func point(p config.Point) domain.LatLng {
	return domain.LatLng{Lat: p.Lat, Lng: p.Lng}
}
