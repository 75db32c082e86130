package interfaces

import (
	"context"

	"project_travelSafe/internal/entities"
)

// AIClient is the model-reply capability: given a conversation
// history, produce a reply string.
type AIClient interface {
	SendTurn(ctx context.Context, history []entities.Message) (string, error)
}

// SafetyFactsSource provides curated destination-level safety guidance.
type SafetyFactsSource interface {
	FetchFacts(ctx context.Context, destination string) (*entities.SafetyFacts, error)
}

// PlacesSource provides nearby points of interest around a coordinate.
type PlacesSource interface {
	FetchNearby(ctx context.Context, lat, lng float64, radiusMeters int, categories []string) ([]entities.Place, error)
}

// DirectionsSource provides walking routes between two locations.
type DirectionsSource interface {
	FetchRoute(ctx context.Context, origin, destination string) ([]entities.Route, error)
}
