package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionManager_GetOrCreateSession(t *testing.T) {
	sm := NewSessionManager()

	first := sm.GetOrCreateSession(42)
	second := sm.GetOrCreateSession(42)
	other := sm.GetOrCreateSession(7)

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
}

func TestChatSession_BeginTurn(t *testing.T) {
	session := &ChatSession{ChatID: 42}

	assert.True(t, session.BeginTurn())

	// A second turn cannot start while the first is in flight.
	assert.False(t, session.BeginTurn())

	// Releasing alone is not enough; the debounce window still applies.
	session.EndTurn()
	assert.False(t, session.BeginTurn())
}

func TestChatSession_DebounceExpires(t *testing.T) {
	session := &ChatSession{ChatID: 42, LastMessage: time.Now().Add(-2 * time.Second)}

	assert.True(t, session.BeginTurn())
	session.EndTurn()

	session.LastMessage = time.Now().Add(-2 * time.Second)
	assert.True(t, session.BeginTurn())
}
