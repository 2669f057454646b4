package kernel

import "foodorders/internal/pkg/errs"

// Coordinates is a geographic point value object produced by the coordinate
// lookup service. Latitude and longitude are WGS84 degrees.
//
// The zero value is invalid; construct through NewCoordinates. Queries that
// enrich an order projection with coordinates carry *Coordinates and leave
// it nil when the lookup fails.
type Coordinates struct {
	latitude  float64
	longitude float64
	guard     bool
}

// NewCoordinates validates the degree ranges and builds a Coordinates value.
func NewCoordinates(latitude, longitude float64) (Coordinates, error) {
	if latitude < -90 || latitude > 90 {
		return Coordinates{}, errs.NewValueIsOutOfRangeError("latitude", latitude, -90.0, 90.0)
	}
	if longitude < -180 || longitude > 180 {
		return Coordinates{}, errs.NewValueIsOutOfRangeError("longitude", longitude, -180.0, 180.0)
	}
	return Coordinates{latitude: latitude, longitude: longitude, guard: true}, nil
}

// Latitude returns the latitude in degrees.
func (c Coordinates) Latitude() float64 {
	return c.latitude
}

// Longitude returns the longitude in degrees.
func (c Coordinates) Longitude() float64 {
	return c.longitude
}

// IsEqual reports whether two coordinate pairs are identical.
func (c Coordinates) IsEqual(other Coordinates) bool {
	return c.latitude == other.latitude && c.longitude == other.longitude
}

// Validate rejects zero-value Coordinates not built via NewCoordinates.
func (c Coordinates) Validate() error {
	if !c.guard {
		return errs.NewValueIsRequiredError("Coordinates must be created via NewCoordinates")
	}
	return nil
}
