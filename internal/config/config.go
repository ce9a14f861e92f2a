// Package config loads application settings from an optional YAML file,
// a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvAPIURL  = "VITE_API_URL_V2"
	EnvMapsKey = "GOOGLE_MAPS_API_KEY"
	EnvDBPath  = "NEXTDAY_DB_PATH"
)

// Geolocation modes.
const (
	GeoIP     = "ip"
	GeoStatic = "static"
	GeoOff    = "off"
)

// Storage drivers.
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

type Config struct {
	API         APIConfig         `yaml:"api"`
	Maps        MapsConfig        `yaml:"maps"`
	Geolocation GeolocationConfig `yaml:"geolocation"`
	Storage     StorageConfig     `yaml:"storage"`
	Cache       CacheConfig       `yaml:"cache"`
}

type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type MapsConfig struct {
	APIKey   string `yaml:"api_key"`
	Language string `yaml:"language"`
	Center   Point  `yaml:"center"`
	Marker   Point  `yaml:"marker"`
}

// Point is a coordinate pair in the config file.
type Point struct {
	Lat float64 `yaml:"lat"`
	Lng float64 `yaml:"lng"`
}

type GeolocationConfig struct {
	Mode     string        `yaml:"mode"`
	Endpoint string        `yaml:"endpoint"`
	Lat      float64       `yaml:"lat"`
	Lng      float64       `yaml:"lng"`
	Timeout  time.Duration `yaml:"timeout"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

type CacheConfig struct {
	MealTTL    time.Duration `yaml:"meal_ttl"`
	GeocodeTTL time.Duration `yaml:"geocode_ttl"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:8001/api",
			Timeout: 30 * time.Second,
		},
		Maps: MapsConfig{
			Center: Point{Lat: 24.774265, Lng: 46.6753},
			Marker: Point{Lat: 24.7136, Lng: 46.6753},
		},
		Geolocation: GeolocationConfig{
			Mode:    GeoIP,
			Lat:     24.774265,
			Lng:     46.6753,
			Timeout: 15 * time.Second,
		},
		Storage: StorageConfig{
			Driver: StorageMemory,
			Path:   "nextday.db",
		},
		Cache: CacheConfig{
			MealTTL:    10 * time.Minute,
			GeocodeTTL: time.Hour,
		},
	}
}

// Load reads envFile (if it exists) into the environment, then the YAML
// file at path (if non-empty) with ${VAR} expansion, then applies
// environment overrides.
func Load(path, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvAPIURL)); v != "" {
		c.API.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvMapsKey)); v != "" {
		c.Maps.APIKey = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDBPath)); v != "" {
		c.Storage.Path = v
		c.Storage.Driver = StorageSQLite
	}
	if v := strings.TrimSpace(os.Getenv("NEXTDAY_GEOLOCATION")); v != "" {
		c.Geolocation.Mode = v
	}
	if v := strings.TrimSpace(os.Getenv("NEXTDAY_API_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			if secs, serr := strconv.Atoi(v); serr == nil {
				d = time.Duration(secs) * time.Second
			} else {
				return fmt.Errorf("config: NEXTDAY_API_TIMEOUT: %w", err)
			}
		}
		c.API.Timeout = d
	}
	return nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.Geolocation.Mode {
	case GeoIP, GeoStatic, GeoOff:
	default:
		return fmt.Errorf("config: unknown geolocation mode %q", c.Geolocation.Mode)
	}
	switch c.Storage.Driver {
	case StorageMemory, StorageSQLite:
	default:
		return fmt.Errorf("config: unknown storage driver %q", c.Storage.Driver)
	}
	if c.Storage.Driver == StorageSQLite && c.Storage.Path == "" {
		return errors.New("config: sqlite storage needs a path")
	}
	if c.API.Timeout <= 0 {
		return errors.New("config: api timeout must be positive")
	}
	if c.Geolocation.Timeout <= 0 {
		return errors.New("config: geolocation timeout must be positive")
	}
	return nil
}
