package location

import (
	"context"

	"github.com/WeberBSG/ParTea/internal/app/models"
)

// Resolver obtains the caller's current coordinates. Single shot: one call,
// one fix or one distinguishable failure. No retry or timeout of its own;
// recovery is the caller re-invoking the whole operation.
type Resolver interface {
	Resolve(ctx context.Context) (models.Coordinate, error)
}

// Failure kinds a client geolocation report may carry.
const (
	FailureUnsupported = "unsupported"
	FailureDenied      = "denied"
	FailureUnavailable = "unavailable"
)

// Report is the geolocation outcome the client ships with a request: the
// device fix when it succeeded, or the failure kind the host reported.
type Report struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Failure   string   `json:"geo_error,omitempty"`
}

type reportResolver struct {
	report Report
}

// FromReport wraps a client geolocation report as a Resolver. The device fix
// happens on the client; Resolve only translates the reported outcome into a
// coordinate or the matching domain error.
func FromReport(r Report) Resolver {
	return reportResolver{report: r}
}

func (r reportResolver) Resolve(ctx context.Context) (models.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return models.Coordinate{}, err
	}

	switch r.report.Failure {
	case "":
	case FailureUnsupported:
		return models.Coordinate{}, models.ErrLocationUnsupported
	case FailureDenied:
		return models.Coordinate{}, models.ErrLocationPermissionDenied
	default:
		return models.Coordinate{}, models.ErrLocationUnavailable
	}

	if r.report.Latitude == nil || r.report.Longitude == nil {
		return models.Coordinate{}, models.ErrLocationUnavailable
	}

	return models.Coordinate{
		Latitude:  *r.report.Latitude,
		Longitude: *r.report.Longitude,
	}, nil
}

type staticResolver struct {
	coord models.Coordinate
}

// Static returns a Resolver that always yields the given coordinates.
func Static(lat, lng float64) Resolver {
	return staticResolver{coord: models.Coordinate{Latitude: lat, Longitude: lng}}
}

func (s staticResolver) Resolve(ctx context.Context) (models.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return models.Coordinate{}, err
	}
	return s.coord, nil
}
