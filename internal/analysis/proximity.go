package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/shenikar/safetravel/internal/geo"
	"github.com/shenikar/safetravel/internal/models"
)

// NearbyIncident - инцидент вместе с расстоянием до центра поиска
type NearbyIncident struct {
	models.Incident
	DistanceMeters float64 `json:"distance_meters"`
}

// NearbySafeLocation - безопасное место вместе с расстоянием до центра поиска
type NearbySafeLocation struct {
	models.SafeLocation
	DistanceMeters float64 `json:"distance_meters"`
}

// WithinRadius возвращает инциденты не дальше radiusMeters от center,
// отсортированные по возрастанию расстояния. При равных расстояниях сохраняется порядок входа.
func WithinRadius(incidents []models.Incident, center models.Point, radiusMeters float64) ([]NearbyIncident, error) {
	return withinRadius(incidents, models.Incident.Location, center, radiusMeters,
		func(inc models.Incident, d float64) NearbyIncident {
			return NearbyIncident{Incident: inc, DistanceMeters: d}
		})
}

// SafeLocationsWithin - то же, что WithinRadius, для безопасных мест
func SafeLocationsWithin(locations []models.SafeLocation, center models.Point, radiusMeters float64) ([]NearbySafeLocation, error) {
	return withinRadius(locations, models.SafeLocation.Location, center, radiusMeters,
		func(loc models.SafeLocation, d float64) NearbySafeLocation {
			return NearbySafeLocation{SafeLocation: loc, DistanceMeters: d}
		})
}

func withinRadius[T, R any](items []T, locate func(T) models.Point, center models.Point, radiusMeters float64, wrap func(T, float64) R) ([]R, error) {
	if err := validateRadius(radiusMeters); err != nil {
		return nil, err
	}
	if err := center.Validate(); err != nil {
		return nil, err
	}

	type hit struct {
		item     T
		distance float64
	}
	hits := make([]hit, 0)
	for _, item := range items {
		d := geo.DistanceMeters(center, locate(item))
		if d <= radiusMeters {
			hits = append(hits, hit{item: item, distance: d})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].distance < hits[j].distance
	})

	out := make([]R, len(hits))
	for i, h := range hits {
		out[i] = wrap(h.item, h.distance)
	}
	return out, nil
}

func validateRadius(r float64) error {
	if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
		return fmt.Errorf("%w: %v", models.ErrInvalidRadius, r)
	}
	return nil
}
