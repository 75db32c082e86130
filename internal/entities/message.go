package entities

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry of a conversation history, oldest first.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ComposedReply is the model reply merged with the safety block.
// SafetyData is nil when no destination was detected or the facts
// source was unavailable for the turn.
type ComposedReply struct {
	ResponseText string       `json:"response"`
	SafetyData   *SafetyFacts `json:"safetyData"`
}

// TurnResult is the full outcome of one chat turn. PlaceSafety and
// Routes are exposed separately from the composed text so the
// presentation layer can render them structurally (map pins, route lists).
type TurnResult struct {
	ComposedReply
	Destination string       `json:"destination,omitempty"`
	PlaceSafety *PlaceSafety `json:"placeSafety"`
	Routes      []Route      `json:"routes"`
}
