package usecases

import (
	"fmt"
	"sort"
	"strings"

	"project_travelSafe/internal/entities"
)

// ComposeReply merges the model reply with the safety block. With no
// facts the reply passes through byte-identical and SafetyData stays
// nil. The section order is fixed; display layers parse it.
func ComposeReply(modelReply, destination string, facts *entities.SafetyFacts) entities.ComposedReply {
	if facts == nil {
		return entities.ComposedReply{ResponseText: modelReply}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🔒 Safety Information for %s:\n\n", destination)
	fmt.Fprintf(&b, "Women's Safety Score: %g/10\n\n", facts.WomenSafety.Score)

	b.WriteString("Safe Areas:\n")
	writeBullets(&b, facts.WomenSafety.SafeAreas)

	b.WriteString("\nSafety Recommendations:\n")
	writeBullets(&b, facts.WomenSafety.Recommendations)

	b.WriteString("\nTransportation Safety:\n")
	writeBullets(&b, facts.TransportSafety.RecommendedServices)

	b.WriteString("\nEmergency Contacts:\n")
	labels := make([]string, 0, len(facts.WomenSafety.EmergencyContacts))
	for label := range facts.WomenSafety.EmergencyContacts {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		fmt.Fprintf(&b, "• %s: %s\n", label, facts.WomenSafety.EmergencyContacts[label])
	}

	return entities.ComposedReply{
		ResponseText: modelReply + "\n\n" + b.String(),
		SafetyData:   facts,
	}
}

func writeBullets(b *strings.Builder, items []string) {
	for _, item := range items {
		fmt.Fprintf(b, "• %s\n", item)
	}
}
