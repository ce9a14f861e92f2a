package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hammamikhairi/nextday/internal/domain"
	"github.com/hammamikhairi/nextday/internal/logger"
)

// IPLocateURL is the default IP geolocation endpoint.
const IPLocateURL = "http://ip-api.com/json/"

// Compile-time interface checks.
var (
	_ domain.LocationProvider = (*IPLocator)(nil)
	_ domain.LocationProvider = Static{}
	_ domain.LocationProvider = Denied{}
)

// IPLocator estimates the device position from its public IP address.
type IPLocator struct {
	endpoint string
	http     *http.Client
	log      *logger.Logger
}

// NewIPLocator creates a locator querying endpoint (IPLocateURL if empty).
func NewIPLocator(endpoint string, log *logger.Logger) *IPLocator {
	if endpoint == "" {
		endpoint = IPLocateURL
	}
	return &IPLocator{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 10 * time.Second},
		log:      log,
	}
}

type ipLocateResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// CurrentPosition returns the IP-derived position. Lookup failures are
// reported as domain.ErrPositionUnavailable; a context deadline is returned
// as is.
func (l *IPLocator) CurrentPosition(ctx context.Context) (domain.LatLng, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.endpoint, nil)
	if err != nil {
		return domain.LatLng{}, fmt.Errorf("locate: create request: %w", err)
	}

	resp, err := l.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return domain.LatLng{}, ctx.Err()
		}
		return domain.LatLng{}, fmt.Errorf("locate: %v: %w", err, domain.ErrPositionUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.LatLng{}, fmt.Errorf("locate: %s: %w", resp.Status, domain.ErrPositionUnavailable)
	}

	var body ipLocateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.LatLng{}, fmt.Errorf("locate: decode: %v: %w", err, domain.ErrPositionUnavailable)
	}
	if body.Status != "success" {
		l.log.Debug("ip locate failed: %s", body.Message)
		return domain.LatLng{}, fmt.Errorf("locate: %s: %w", body.Message, domain.ErrPositionUnavailable)
	}

	return domain.LatLng{Lat: body.Lat, Lng: body.Lon}, nil
}

// Static always reports a fixed, configured position.
type Static struct {
	Pos domain.LatLng
}

// CurrentPosition returns the configured position.
func (s Static) CurrentPosition(ctx context.Context) (domain.LatLng, error) {
	return s.Pos, nil
}

// Denied models a user who refused to share their location.
type Denied struct{}

// CurrentPosition always fails with domain.ErrPermissionDenied.
func (Denied) CurrentPosition(ctx context.Context) (domain.LatLng, error) {
	return domain.LatLng{}, domain.ErrPermissionDenied
}
