package ports

import (
	"context"

	"foodorders/internal/core/domain/model/kernel"
)

// Geocoder resolves a postal address into geographic coordinates.
// Implementations call an external service; callers must treat failures
// as non-fatal for read paths and degrade to a response without
// coordinates.
type Geocoder interface {
	// Resolve looks up the coordinates of the given address.
	// Returns errs.ErrObjectNotFound when the service knows nothing
	// about the address.
	Resolve(ctx context.Context, address string) (kernel.Coordinates, error)
}
