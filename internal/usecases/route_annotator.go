package usecases

import (
	"strings"

	"project_travelSafe/internal/entities"
)

const (
	mainRoadNote   = "Main road - generally well-lit and populated"
	sideStreetNote = "Side street/path - consider alternative route during night time"
)

// AnnotateRoutes annotates every route in the slice. Returns a new
// slice; the input is never mutated.
func AnnotateRoutes(routes []entities.Route) []entities.Route {
	if routes == nil {
		return nil
	}
	out := make([]entities.Route, len(routes))
	for i, route := range routes {
		out[i] = AnnotateRoute(route)
	}
	return out
}

// AnnotateRoute attaches safety notes to each step of every leg.
// Copy-on-write: instruction text, step order and existing notes are
// preserved, notes are only appended.
func AnnotateRoute(route entities.Route) entities.Route {
	annotated := route
	annotated.Legs = make([]entities.Leg, len(route.Legs))
	for i, leg := range route.Legs {
		newLeg := leg
		newLeg.Steps = make([]entities.Step, len(leg.Steps))
		for j, step := range leg.Steps {
			newStep := step
			notes := safetyNotes(step.Instructions)
			if len(notes) > 0 {
				newStep.SafetyNotes = append(append([]string(nil), step.SafetyNotes...), notes...)
			}
			newLeg.Steps[j] = newStep
		}
		annotated.Legs[i] = newLeg
	}
	return annotated
}

func safetyNotes(instructions string) []string {
	lower := strings.ToLower(instructions)

	var notes []string
	if strings.Contains(lower, "highway") || strings.Contains(lower, "main") {
		notes = append(notes, mainRoadNote)
	}
	if strings.Contains(lower, "alley") || strings.Contains(lower, "path") {
		notes = append(notes, sideStreetNote)
	}
	return notes
}
