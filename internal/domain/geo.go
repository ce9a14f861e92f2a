package domain

import "fmt"

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64
	Lng float64
}

// Coordinates formats the position with six decimal places, the literal
// fallback used whenever no geocoded address is available.
func (p LatLng) Coordinates() string {
	return fmt.Sprintf("%.6f, %.6f", p.Lat, p.Lng)
}
