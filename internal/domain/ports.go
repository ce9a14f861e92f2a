package domain

import "context"

// SessionStore persists registration sessions. Implementations can be
// in-memory or SQLite.
type SessionStore interface {
	Save(ctx context.Context, session *Session) error
	Load(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Session, error)
}

// LocationProvider reports the device's current position. Implementations
// return ErrPermissionDenied, ErrPositionUnavailable, or the context error
// on timeout.
type LocationProvider interface {
	CurrentPosition(ctx context.Context) (LatLng, error)
}

// Geocoder resolves coordinates to a formatted, human-readable address.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, pos LatLng) (string, error)
}

// RemoteCalculator computes a MacroResult on the server.
type RemoteCalculator interface {
	CalculateNutrition(ctx context.Context, p Profile, diet DietType) (MacroResult, error)
}

// ProfileSaver persists a nutrition profile.
type ProfileSaver interface {
	SaveProfile(ctx context.Context, rec ProfileRecord) error
}

// MealSource fetches meal records by id.
type MealSource interface {
	GetMeal(ctx context.Context, id string) (*MealRecord, error)
}

// Notifier delivers messages to the user. Acknowledgments and advisories
// are non-blocking; alerts need the user's attention.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	Alert(ctx context.Context, message string) error
}
