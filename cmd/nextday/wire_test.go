package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/nextday/internal/address"
	"github.com/hammamikhairi/nextday/internal/config"
	"github.com/hammamikhairi/nextday/internal/domain"
	"github.com/hammamikhairi/nextday/internal/geo"
	"github.com/hammamikhairi/nextday/internal/logger"
	"github.com/hammamikhairi/nextday/internal/meal"
	"github.com/hammamikhairi/nextday/internal/notify"
	"github.com/hammamikhairi/nextday/internal/storage"
)

func quietLog() *logger.Logger { return logger.New(logger.LevelOff, nil) }

func TestNewLocator(t *testing.T) {
	cfg := config.Default()

	require.IsType(t, &geo.IPLocator{}, newLocator(cfg, quietLog()))

	cfg.Geolocation.Mode = config.GeoStatic
	loc := newLocator(cfg, quietLog())
	pos, err := loc.CurrentPosition(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.LatLng{Lat: 24.774265, Lng: 46.6753}, pos)

	cfg.Geolocation.Mode = config.GeoOff
	_, err = newLocator(cfg, quietLog()).CurrentPosition(context.Background())
	require.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestNewGeocoder(t *testing.T) {
	cfg := config.Default()
	require.Nil(t, newGeocoder(cfg, quietLog()))

	cfg.Maps.APIKey = "key"
	require.IsType(t, &geo.CachingGeocoder{}, newGeocoder(cfg, quietLog()))

	cfg.Cache.GeocodeTTL = 0
	require.IsType(t, &geo.GoogleGeocoder{}, newGeocoder(cfg, quietLog()))
}

func TestNewPickerStartsAtConfiguredPoints(t *testing.T) {
	cfg := config.Default()
	p := newPicker(cfg, quietLog(), notify.NewQueue(quietLog()))
	require.Equal(t, address.DefaultCenter, p.Center())
	require.Equal(t, address.DefaultMarker, p.Marker())

	cfg.Maps.Center = config.Point{Lat: 21.4858, Lng: 39.1925}
	cfg.Maps.Marker = config.Point{Lat: 21.5, Lng: 39.2}
	p = newPicker(cfg, quietLog(), notify.NewQueue(quietLog()))
	require.Equal(t, domain.LatLng{Lat: 21.4858, Lng: 39.1925}, p.Center())
	require.Equal(t, domain.LatLng{Lat: 21.5, Lng: 39.2}, p.Marker())

	p.UseCurrent(context.Background())
	require.Equal(t, "21.485800, 39.192500", p.Resolved(context.Background()))
}

func TestNewStore(t *testing.T) {
	cfg := config.Default()
	s, closeFn, err := newStore(cfg, quietLog())
	require.NoError(t, err)
	require.IsType(t, &storage.MemoryStore{}, s)
	require.NoError(t, closeFn())

	cfg.Storage.Driver = config.StorageSQLite
	cfg.Storage.Path = filepath.Join(t.TempDir(), "nd.db")
	s, closeFn, err = newStore(cfg, quietLog())
	require.NoError(t, err)
	require.IsType(t, &storage.SQLiteStore{}, s)
	require.NoError(t, closeFn())
}

func TestSampleHintListsOfflineMeals(t *testing.T) {
	require.Equal(t,
		"sample meals: grilled-chicken-bowl, oat-berry-cup, salmon-quinoa",
		sampleHint(meal.NewMemorySource(quietLog()).IDs()))
}
