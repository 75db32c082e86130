package usecases

import "strings"

const (
	SegmentParagraph = "paragraph"
	SegmentHeading   = "heading"
)

// Segment is one display block of a model reply.
type Segment struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// FormatSegments splits a model reply on "**" heading markers into an
// ordered sequence of heading and paragraph segments. Pure function;
// blank chunks are dropped, stray single asterisks are stripped.
func FormatSegments(text string) []Segment {
	var segments []Segment

	heading := false
	rest := text
	for {
		idx := strings.Index(rest, "**")
		chunk := rest
		if idx >= 0 {
			chunk = rest[:idx]
		}

		if trimmed := strings.TrimSpace(strings.ReplaceAll(chunk, "*", "")); trimmed != "" {
			kind := SegmentParagraph
			if heading {
				kind = SegmentHeading
			}
			segments = append(segments, Segment{Kind: kind, Text: trimmed})
		}

		if idx < 0 {
			return segments
		}
		rest = rest[idx+2:]
		heading = !heading
	}
}
