package entities

// SafetyFacts is curated destination-level guidance from the safety
// facts source. The pipeline formats and passes it through unchanged.
type SafetyFacts struct {
	WomenSafety     WomenSafety     `json:"womenSafety"`
	TransportSafety TransportSafety `json:"transportSafety"`
}

type WomenSafety struct {
	Score             float64           `json:"score"` // 0-10
	SafeAreas         []string          `json:"safeAreas"`
	Recommendations   []string          `json:"recommendations"`
	EmergencyContacts map[string]string `json:"emergencyContacts"`
}

type TransportSafety struct {
	RecommendedServices []string `json:"recommendedServices"`
	SafetyTips          []string `json:"safetyTips"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is a nearby point of interest from the places source.
type Place struct {
	Name     string   `json:"name"`
	Types    []string `json:"types"`
	Vicinity string   `json:"vicinity,omitempty"`
	Location LatLng   `json:"location"`
}

// PlaceSafety is the score derived from live places data, distinct
// from the curated SafetyFacts.
type PlaceSafety struct {
	SafetyScore    float64 `json:"safetyScore"` // 0-100
	NearbyServices []Place `json:"nearbyServices"`
}

// Step keeps the directions source's instruction text verbatim;
// SafetyNotes is the only field the annotator adds.
type Step struct {
	Instructions string   `json:"html_instructions"`
	Distance     string   `json:"distance,omitempty"`
	Duration     string   `json:"duration,omitempty"`
	SafetyNotes  []string `json:"safety_notes,omitempty"`
}

type Leg struct {
	StartAddress string `json:"start_address,omitempty"`
	EndAddress   string `json:"end_address,omitempty"`
	EndLocation  LatLng `json:"end_location"`
	Steps        []Step `json:"steps"`
}

type Route struct {
	Summary string `json:"summary,omitempty"`
	Legs    []Leg  `json:"legs"`
}
