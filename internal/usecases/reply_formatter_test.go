package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSegments(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []Segment
	}{
		{
			name:     "plain text is one paragraph",
			text:     "Paris is lovely in spring.",
			expected: []Segment{{Kind: SegmentParagraph, Text: "Paris is lovely in spring."}},
		},
		{
			name: "bold marker opens a heading",
			text: "Intro **Getting Around** Use the metro.",
			expected: []Segment{
				{Kind: SegmentParagraph, Text: "Intro"},
				{Kind: SegmentHeading, Text: "Getting Around"},
				{Kind: SegmentParagraph, Text: "Use the metro."},
			},
		},
		{
			name: "leading heading",
			text: "**Safety Tips** Stay alert.",
			expected: []Segment{
				{Kind: SegmentHeading, Text: "Safety Tips"},
				{Kind: SegmentParagraph, Text: "Stay alert."},
			},
		},
		{
			name: "stray single asterisks are stripped",
			text: "Use *official* taxis only.",
			expected: []Segment{
				{Kind: SegmentParagraph, Text: "Use official taxis only."},
			},
		},
		{
			name: "unterminated heading still renders",
			text: "Intro **Dangling heading",
			expected: []Segment{
				{Kind: SegmentParagraph, Text: "Intro"},
				{Kind: SegmentHeading, Text: "Dangling heading"},
			},
		},
		{
			name:     "blank chunks are dropped",
			text:     "  **  ** ",
			expected: nil,
		},
		{
			name:     "empty input",
			text:     "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatSegments(tt.text))
		})
	}
}
