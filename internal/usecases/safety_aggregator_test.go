package usecases

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"project_travelSafe/internal/entities"
	apperrors "project_travelSafe/internal/errors"
	"project_travelSafe/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFactsSource struct {
	facts *entities.SafetyFacts
	err   error
	calls int32
}

func (s *stubFactsSource) FetchFacts(ctx context.Context, destination string) (*entities.SafetyFacts, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.facts, s.err
}

type stubPlacesSource struct {
	places []entities.Place
	err    error
	calls  int32
}

func (s *stubPlacesSource) FetchNearby(ctx context.Context, lat, lng float64, radiusMeters int, categories []string) ([]entities.Place, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.places, s.err
}

type stubDirectionsSource struct {
	routes []entities.Route
	err    error
	calls  int32
}

func (s *stubDirectionsSource) FetchRoute(ctx context.Context, origin, destination string) ([]entities.Route, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.routes, s.err
}

func createTestRoutes() []entities.Route {
	return []entities.Route{{
		Summary: "Rue de Rivoli",
		Legs: []entities.Leg{{
			EndLocation: entities.LatLng{Lat: 48.8566, Lng: 2.3522},
			Steps:       []entities.Step{{Instructions: "Turn onto Main Street"}},
		}},
	}}
}

func TestAggregate_BothPathsSucceed(t *testing.T) {
	facts := &stubFactsSource{facts: createTestFacts()}
	places := &stubPlacesSource{places: []entities.Place{
		{Name: "Station", Types: []string{"police"}},
		{Name: "Clinic", Types: []string{"hospital"}},
	}}
	directions := &stubDirectionsSource{routes: createTestRoutes()}

	agg := NewSafetyAggregator(facts, places, directions, 1500, logger.NewTestLogger(t))
	report := agg.Aggregate(context.Background(), "Paris", "48.85,2.35")

	require.NoError(t, report.FactsErr)
	require.NoError(t, report.GeoErr)
	assert.Equal(t, createTestFacts(), report.Facts)

	require.Len(t, report.Routes, 1)
	assert.Equal(t, []string{mainRoadNote}, report.Routes[0].Legs[0].Steps[0].SafetyNotes)

	require.NotNil(t, report.Places)
	assert.Equal(t, 67.5, report.Places.SafetyScore)
	assert.Len(t, report.Places.NearbyServices, 2)
}

func TestAggregate_NoOriginSkipsGeoPath(t *testing.T) {
	facts := &stubFactsSource{facts: createTestFacts()}
	places := &stubPlacesSource{}
	directions := &stubDirectionsSource{routes: createTestRoutes()}

	agg := NewSafetyAggregator(facts, places, directions, 1500, logger.NewTestLogger(t))
	report := agg.Aggregate(context.Background(), "Paris", "")

	assert.NotNil(t, report.Facts)
	assert.Nil(t, report.Routes)
	assert.Nil(t, report.Places)
	assert.EqualValues(t, 0, directions.calls)
	assert.EqualValues(t, 0, places.calls)
}

func TestAggregate_FactsFailureLeavesGeoIntact(t *testing.T) {
	facts := &stubFactsSource{err: errors.New("connection refused")}
	places := &stubPlacesSource{places: []entities.Place{{Name: "Station", Types: []string{"police"}}}}
	directions := &stubDirectionsSource{routes: createTestRoutes()}

	agg := NewSafetyAggregator(facts, places, directions, 1500, logger.NewNoOpLogger())
	report := agg.Aggregate(context.Background(), "Paris", "48.85,2.35")

	assert.Nil(t, report.Facts)
	assert.Equal(t, apperrors.ErrCodeSafetyFactsFailed, apperrors.CodeOf(report.FactsErr))
	assert.NotNil(t, report.Places)
	assert.Len(t, report.Routes, 1)
}

func TestAggregate_DirectionsFailureLeavesFactsIntact(t *testing.T) {
	facts := &stubFactsSource{facts: createTestFacts()}
	places := &stubPlacesSource{}
	directions := &stubDirectionsSource{err: errors.New("quota exceeded")}

	agg := NewSafetyAggregator(facts, places, directions, 1500, logger.NewNoOpLogger())
	report := agg.Aggregate(context.Background(), "Paris", "48.85,2.35")

	assert.NotNil(t, report.Facts)
	assert.Equal(t, apperrors.ErrCodeDirectionsFailed, apperrors.CodeOf(report.GeoErr))
	assert.Nil(t, report.Routes)
	assert.Nil(t, report.Places)
	assert.EqualValues(t, 0, places.calls)
}

func TestAggregate_PlacesFailureKeepsRoutes(t *testing.T) {
	facts := &stubFactsSource{facts: createTestFacts()}
	places := &stubPlacesSource{err: errors.New("quota exceeded")}
	directions := &stubDirectionsSource{routes: createTestRoutes()}

	agg := NewSafetyAggregator(facts, places, directions, 1500, logger.NewNoOpLogger())
	report := agg.Aggregate(context.Background(), "Paris", "48.85,2.35")

	assert.Equal(t, apperrors.ErrCodePlacesFailed, apperrors.CodeOf(report.GeoErr))
	assert.Len(t, report.Routes, 1)
	assert.Nil(t, report.Places)
}

func TestAggregate_EmptyRoutesSkipPlacesLookup(t *testing.T) {
	facts := &stubFactsSource{facts: createTestFacts()}
	places := &stubPlacesSource{}
	directions := &stubDirectionsSource{routes: []entities.Route{}}

	agg := NewSafetyAggregator(facts, places, directions, 1500, logger.NewTestLogger(t))
	report := agg.Aggregate(context.Background(), "Paris", "48.85,2.35")

	assert.NoError(t, report.GeoErr)
	assert.Nil(t, report.Places)
	assert.EqualValues(t, 0, places.calls)
}

func TestAggregate_Idempotent(t *testing.T) {
	facts := &stubFactsSource{facts: createTestFacts()}
	places := &stubPlacesSource{places: []entities.Place{{Name: "Station", Types: []string{"police"}}}}
	directions := &stubDirectionsSource{routes: createTestRoutes()}

	agg := NewSafetyAggregator(facts, places, directions, 1500, logger.NewTestLogger(t))

	first := agg.Aggregate(context.Background(), "Paris", "48.85,2.35")
	second := agg.Aggregate(context.Background(), "Paris", "48.85,2.35")

	assert.Equal(t, first, second)
}
