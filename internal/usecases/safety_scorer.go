package usecases

import "project_travelSafe/internal/entities"

// Score weighting: more police stations and hospitals nearby means a
// higher score. Weights are heuristic, not statistically validated.
const (
	baseSafetyScore = 50.0
	policeWeight    = 2.0
	hospitalWeight  = 1.5
	weightScale     = 5.0
)

// ScorePlaces computes a safety score in [0,100] from nearby services.
// Deterministic and order-independent; an empty input scores the base 50.
func ScorePlaces(places []entities.Place) float64 {
	score := baseSafetyScore
	for _, place := range places {
		if hasType(place, "police") {
			score += policeWeight * weightScale
		}
		if hasType(place, "hospital") {
			score += hospitalWeight * weightScale
		}
	}

	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

func hasType(place entities.Place, t string) bool {
	for _, pt := range place.Types {
		if pt == t {
			return true
		}
	}
	return false
}
