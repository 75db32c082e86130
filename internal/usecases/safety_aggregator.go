package usecases

import (
	"context"
	"sync"

	"project_travelSafe/internal/entities"
	apperrors "project_travelSafe/internal/errors"
	"project_travelSafe/internal/interfaces"
	"project_travelSafe/internal/logger"
)

// safetyCategories are the place types the geo path searches for.
var safetyCategories = []string{"police", "hospital"}

// SafetyReport carries each retrieval path's value together with its
// error so the caller decides what to discard. A populated error never
// means the other path failed too.
type SafetyReport struct {
	Facts    *entities.SafetyFacts
	FactsErr error

	Places *entities.PlaceSafety
	Routes []entities.Route
	GeoErr error
}

// SafetyAggregator orchestrates the best-effort retrieval of curated
// facts and live geo data for a destination. Single attempt per path
// per turn, no retries.
type SafetyAggregator struct {
	facts      interfaces.SafetyFactsSource
	places     interfaces.PlacesSource
	directions interfaces.DirectionsSource
	radius     int
	log        logger.Logger
}

func NewSafetyAggregator(
	facts interfaces.SafetyFactsSource,
	places interfaces.PlacesSource,
	directions interfaces.DirectionsSource,
	radiusMeters int,
	log logger.Logger,
) *SafetyAggregator {
	return &SafetyAggregator{
		facts:      facts,
		places:     places,
		directions: directions,
		radius:     radiusMeters,
		log:        log,
	}
}

// Aggregate runs the facts path and, when an origin coordinate is
// available, the geo path. The paths are independent and run
// concurrently; either may fail without affecting the other.
func (a *SafetyAggregator) Aggregate(ctx context.Context, destination, origin string) SafetyReport {
	var (
		report SafetyReport
		wg     sync.WaitGroup
	)

	if a.facts != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			report.Facts, report.FactsErr = a.fetchFacts(ctx, destination)
		}()
	}

	if origin != "" && a.directions != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			report.Routes, report.Places, report.GeoErr = a.fetchGeo(ctx, destination, origin)
		}()
	}

	wg.Wait()

	if report.FactsErr != nil {
		a.log.WithError(report.FactsErr).Warn("safety facts unavailable", map[string]interface{}{"destination": destination})
	}
	if report.GeoErr != nil {
		a.log.WithError(report.GeoErr).Warn("geo safety data unavailable", map[string]interface{}{"destination": destination})
	}

	return report
}

func (a *SafetyAggregator) fetchFacts(ctx context.Context, destination string) (*entities.SafetyFacts, error) {
	facts, err := a.facts.FetchFacts(ctx, destination)
	if err != nil {
		return nil, apperrors.NewSafetyFactsError(err)
	}
	return facts, nil
}

// fetchGeo retrieves and annotates the walking routes, then scores
// nearby services around the destination endpoint. Routes that were
// already fetched survive a later places failure.
func (a *SafetyAggregator) fetchGeo(ctx context.Context, destination, origin string) ([]entities.Route, *entities.PlaceSafety, error) {
	routes, err := a.directions.FetchRoute(ctx, origin, destination)
	if err != nil {
		return nil, nil, apperrors.NewDirectionsError(err)
	}

	routes = AnnotateRoutes(routes)

	end, ok := destinationEndpoint(routes)
	if !ok || a.places == nil {
		return routes, nil, nil
	}

	places, err := a.places.FetchNearby(ctx, end.Lat, end.Lng, a.radius, safetyCategories)
	if err != nil {
		return routes, nil, apperrors.NewPlacesError(err)
	}

	return routes, &entities.PlaceSafety{
		SafetyScore:    ScorePlaces(places),
		NearbyServices: places,
	}, nil
}

// destinationEndpoint is the end location of the first route's final leg.
func destinationEndpoint(routes []entities.Route) (entities.LatLng, bool) {
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return entities.LatLng{}, false
	}
	legs := routes[0].Legs
	return legs[len(legs)-1].EndLocation, true
}
