package usecases

import (
	"regexp"
	"strings"
)

// travelIntentPattern matches a travel cue phrase followed by a run of
// letters and whitespace. Only the first match in a message is used;
// multiple destinations per message are not supported.
var travelIntentPattern = regexp.MustCompile(`(?i)(?:travel to|traveling to|going to|visit)\s+([a-zA-Z][a-zA-Z\s]*)`)

// temporalQualifiers end the destination span, so "traveling to Paris
// next week" yields "Paris" while "going to New York" keeps both words.
var temporalQualifiers = map[string]bool{
	"next":     true,
	"this":     true,
	"tomorrow": true,
	"today":    true,
	"tonight":  true,
	"soon":     true,
	"later":    true,
	"in":       true,
	"on":       true,
	"for":      true,
}

// ExtractDestination scans free text for a travel-intent phrase and
// returns the destination, or "" when none is found. Pure function.
func ExtractDestination(text string) string {
	m := travelIntentPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}

	words := strings.Fields(m[1])
	dest := make([]string, 0, len(words))
	for _, w := range words {
		if temporalQualifiers[strings.ToLower(w)] {
			break
		}
		dest = append(dest, w)
	}
	return strings.Join(dest, " ")
}
