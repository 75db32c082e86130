package usecases

import (
	"testing"

	"project_travelSafe/internal/entities"

	"github.com/stretchr/testify/assert"
)

func createPlace(name string, types ...string) entities.Place {
	return entities.Place{Name: name, Types: types}
}

func TestScorePlaces(t *testing.T) {
	tests := []struct {
		name     string
		places   []entities.Place
		expected float64
	}{
		{
			name:     "no nearby services scores the base",
			places:   nil,
			expected: 50,
		},
		{
			name: "one police station and one hospital",
			places: []entities.Place{
				createPlace("Central Police Station", "police", "point_of_interest"),
				createPlace("City Hospital", "hospital", "health"),
			},
			expected: 67.5,
		},
		{
			name: "place tagged both police and hospital counts twice",
			places: []entities.Place{
				createPlace("Joint Facility", "police", "hospital"),
			},
			expected: 67.5,
		},
		{
			name: "unrelated types do not move the score",
			places: []entities.Place{
				createPlace("Cafe", "cafe", "food"),
				createPlace("Museum", "museum"),
			},
			expected: 50,
		},
		{
			name: "score is clamped at 100",
			places: []entities.Place{
				createPlace("P1", "police"),
				createPlace("P2", "police"),
				createPlace("P3", "police"),
				createPlace("P4", "police"),
				createPlace("P5", "police"),
				createPlace("P6", "police"),
			},
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ScorePlaces(tt.places))
		})
	}
}

func TestScorePlaces_OrderIndependent(t *testing.T) {
	forward := []entities.Place{
		createPlace("Station", "police"),
		createPlace("Clinic", "hospital"),
		createPlace("Cafe", "cafe"),
	}
	reversed := []entities.Place{forward[2], forward[1], forward[0]}

	assert.Equal(t, ScorePlaces(forward), ScorePlaces(reversed))
}
