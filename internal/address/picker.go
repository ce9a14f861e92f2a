// Package address implements the delivery-address picker: a draggable
// marker over a map center, resolved to a human-readable address.
package address

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hammamikhairi/nextday/internal/domain"
	"github.com/hammamikhairi/nextday/internal/logger"
)

// Advisories recorded when the current position cannot be obtained.
const (
	AdvisoryDenied      = "permission denied"
	AdvisoryUnavailable = "position unavailable"
	AdvisoryTimeout     = "timed out"
	AdvisoryUnknown     = "unknown error"
)

// DefaultLocateTimeout bounds the geolocation request made on mount.
const DefaultLocateTimeout = 15 * time.Second

// Starting positions used until geolocation succeeds.
var (
	DefaultCenter = domain.LatLng{Lat: 24.774265, Lng: 46.6753}
	DefaultMarker = domain.LatLng{Lat: 24.7136, Lng: 46.6753}
)

// Option configures a Picker.
type Option func(*Picker)

// WithConfirm sets the callback receiving the confirmed address.
func WithConfirm(fn func(string)) Option {
	return func(p *Picker) { p.onConfirm = fn }
}

// WithNotifier surfaces advisories through n.
func WithNotifier(n domain.Notifier) Option {
	return func(p *Picker) { p.notifier = n }
}

// WithLocateTimeout overrides DefaultLocateTimeout.
func WithLocateTimeout(d time.Duration) Option {
	return func(p *Picker) { p.timeout = d }
}

// WithStart overrides the default center and marker.
func WithStart(center, marker domain.LatLng) Option {
	return func(p *Picker) {
		p.center = center
		p.marker = marker
	}
}

// Picker holds the map state. All methods are safe for concurrent use.
type Picker struct {
	loc       domain.LocationProvider
	geo       domain.Geocoder
	notifier  domain.Notifier
	log       *logger.Logger
	timeout   time.Duration
	onConfirm func(string)

	mu       sync.Mutex
	center   domain.LatLng
	marker   domain.LatLng
	address  string
	advisory string
	seq      uint64
	pending  chan struct{}
}

// NewPicker creates a picker. A nil loc behaves as an unavailable
// location service and a nil geo disables reverse geocoding.
func NewPicker(loc domain.LocationProvider, geo domain.Geocoder, log *logger.Logger, opts ...Option) *Picker {
	p := &Picker{
		loc:     loc,
		geo:     geo,
		log:     log,
		timeout: DefaultLocateTimeout,
		center:  DefaultCenter,
		marker:  DefaultMarker,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Mount requests the current position. On success the center and marker
// move there; otherwise the defaults are kept and an advisory is recorded.
// The returned error is informational only.
func (p *Picker) Mount(ctx context.Context) error {
	if p.loc == nil {
		p.advise(ctx, AdvisoryUnavailable)
		return domain.ErrPositionUnavailable
	}

	lctx, cancel := context.WithTimeout(ctx, p.timeout)
	pos, err := p.loc.CurrentPosition(lctx)
	timedOut := lctx.Err() == context.DeadlineExceeded
	cancel()

	if err != nil {
		adv := classify(err)
		if timedOut && adv == AdvisoryUnknown {
			adv = AdvisoryTimeout
		}
		p.log.Warn("geolocation failed: %v", err)
		p.advise(ctx, adv)
		return err
	}

	p.mu.Lock()
	p.center = pos
	p.mu.Unlock()
	p.moveTo(ctx, pos)
	p.log.Debug("geolocation: %s", pos.Coordinates())
	return nil
}

func classify(err error) string {
	switch {
	case errors.Is(err, domain.ErrPermissionDenied):
		return AdvisoryDenied
	case errors.Is(err, domain.ErrPositionUnavailable):
		return AdvisoryUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return AdvisoryTimeout
	default:
		return AdvisoryUnknown
	}
}

func (p *Picker) advise(ctx context.Context, msg string) {
	p.mu.Lock()
	p.advisory = msg
	p.mu.Unlock()
	if p.notifier != nil {
		if err := p.notifier.Notify(ctx, "Location: "+msg); err != nil {
			p.log.Debug("advisory notify: %v", err)
		}
	}
}

// Click moves the marker to a tapped map position.
func (p *Picker) Click(ctx context.Context, pos domain.LatLng) { p.moveTo(ctx, pos) }

// DragEnd moves the marker to where a drag finished.
func (p *Picker) DragEnd(ctx context.Context, pos domain.LatLng) { p.moveTo(ctx, pos) }

// UseCurrent moves the marker back to the map center.
func (p *Picker) UseCurrent(ctx context.Context) {
	p.mu.Lock()
	c := p.center
	p.mu.Unlock()
	p.moveTo(ctx, c)
}

func (p *Picker) moveTo(ctx context.Context, pos domain.LatLng) {
	p.mu.Lock()
	p.marker = pos
	p.mu.Unlock()
	p.resolve(ctx)
}

// resolve starts a lookup for the current marker. Only the most recently
// issued lookup may set the address.
func (p *Picker) resolve(ctx context.Context) chan struct{} {
	p.mu.Lock()
	p.seq++
	seq, pos := p.seq, p.marker
	p.address = ""
	done := make(chan struct{})
	p.pending = done
	p.mu.Unlock()

	go func() {
		defer close(done)
		addr := p.lookup(ctx, pos)

		p.mu.Lock()
		defer p.mu.Unlock()
		if seq != p.seq {
			p.log.Debug("discarding stale geocode #%d for %s", seq, pos.Coordinates())
			return
		}
		p.address = addr
	}()
	return done
}

func (p *Picker) lookup(ctx context.Context, pos domain.LatLng) string {
	if p.geo == nil {
		return pos.Coordinates()
	}
	addr, err := p.geo.ReverseGeocode(ctx, pos)
	if err != nil || addr == "" {
		p.log.Debug("reverse geocode %s: %v", pos.Coordinates(), err)
		return pos.Coordinates()
	}
	return addr
}

// Resolved waits for the lookup of the current marker and returns its
// address, or the coordinate string if none is available when ctx ends.
func (p *Picker) Resolved(ctx context.Context) string {
	for {
		p.mu.Lock()
		addr, pos, pending := p.address, p.marker, p.pending
		p.mu.Unlock()

		if addr != "" {
			return addr
		}
		if pending == nil {
			pending = p.resolve(ctx)
		}

		select {
		case <-pending:
			p.mu.Lock()
			if p.pending == pending {
				p.pending = nil
				if p.address == "" {
					p.address = pos.Coordinates()
				}
			}
			p.mu.Unlock()
		case <-ctx.Done():
			return pos.Coordinates()
		}
	}
}

// Confirm emits the address for the current marker to the confirm
// callback and returns it. The result is never empty.
func (p *Picker) Confirm(ctx context.Context) string {
	addr := p.Resolved(ctx)
	p.log.Info("address confirmed: %s", addr)
	if p.onConfirm != nil {
		p.onConfirm(addr)
	}
	return addr
}

// Center returns the map center.
func (p *Picker) Center() domain.LatLng {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.center
}

// Marker returns the marker position.
func (p *Picker) Marker() domain.LatLng {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.marker
}

// Address returns the resolved address for the marker, or "" while a
// lookup is in flight.
func (p *Picker) Address() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.address
}

// Advisory returns the last geolocation advisory, if any.
func (p *Picker) Advisory() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.advisory
}
