// Package geo provides the geocoding and geolocation capabilities used by
// the address picker.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hammamikhairi/nextday/internal/domain"
	"github.com/hammamikhairi/nextday/internal/logger"
)

// GoogleGeocodeURL is the Google Geocoding API endpoint.
const GoogleGeocodeURL = "https://maps.googleapis.com/maps/api/geocode/json"

// Compile-time interface check.
var _ domain.Geocoder = (*GoogleGeocoder)(nil)

// GoogleOption configures the GoogleGeocoder.
type GoogleOption func(*GoogleGeocoder)

// WithEndpoint overrides the geocoding endpoint (used by tests).
func WithEndpoint(endpoint string) GoogleOption {
	return func(g *GoogleGeocoder) { g.endpoint = endpoint }
}

// WithLanguage requests formatted addresses in the given language.
func WithLanguage(lang string) GoogleOption {
	return func(g *GoogleGeocoder) { g.language = lang }
}

// GoogleGeocoder reverse geocodes through the Google Geocoding API.
type GoogleGeocoder struct {
	apiKey   string
	endpoint string
	language string
	http     *http.Client
	log      *logger.Logger
}

// NewGoogleGeocoder creates a geocoder authenticated with apiKey.
func NewGoogleGeocoder(apiKey string, log *logger.Logger, opts ...GoogleOption) *GoogleGeocoder {
	g := &GoogleGeocoder{
		apiKey:   apiKey,
		endpoint: GoogleGeocodeURL,
		http:     &http.Client{Timeout: 10 * time.Second},
		log:      log,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		FormattedAddress string `json:"formatted_address"`
	} `json:"results"`
}

// ReverseGeocode returns the first formatted address for pos. Any status
// other than OK, or an empty result, is reported as domain.ErrGeocodeFailed.
func (g *GoogleGeocoder) ReverseGeocode(ctx context.Context, pos domain.LatLng) (string, error) {
	q := url.Values{}
	q.Set("latlng", strconv.FormatFloat(pos.Lat, 'f', -1, 64)+","+strconv.FormatFloat(pos.Lng, 'f', -1, 64))
	q.Set("key", g.apiKey)
	if g.language != "" {
		q.Set("language", g.language)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("geocode: create request: %w", err)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("geocode: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geocode: %s: %w", resp.Status, domain.ErrGeocodeFailed)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("geocode: decode response: %w", err)
	}

	if body.Status != "OK" || len(body.Results) == 0 || body.Results[0].FormattedAddress == "" {
		g.log.Debug("geocode %s: status=%s %s", pos.Coordinates(), body.Status, body.ErrorMessage)
		return "", fmt.Errorf("geocode: status %s: %w", body.Status, domain.ErrGeocodeFailed)
	}

	return body.Results[0].FormattedAddress, nil
}
