package infrastructure

import (
	"sync"
	"time"
)

// ChatSession tracks in-flight work per Telegram chat.
type ChatSession struct {
	ChatID       int64
	IsProcessing bool
	LastMessage  time.Time
	mu           sync.Mutex
}

// SessionManager manages chat sessions for the Telegram gateway.
type SessionManager struct {
	sessions map[int64]*ChatSession
	mu       sync.RWMutex
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[int64]*ChatSession),
	}
}

// GetOrCreateSession returns or creates a chat session.
func (sm *SessionManager) GetOrCreateSession(chatID int64) *ChatSession {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	session, exists := sm.sessions[chatID]
	if !exists {
		session = &ChatSession{ChatID: chatID}
		sm.sessions[chatID] = session
	}
	return session
}

// BeginTurn claims the session for one turn. Returns false when a turn
// is already running or the chat sent a message within the last second
// (debounce against double-sends).
func (cs *ChatSession) BeginTurn() bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.IsProcessing {
		return false
	}
	if time.Since(cs.LastMessage) < time.Second {
		return false
	}

	cs.LastMessage = time.Now()
	cs.IsProcessing = true
	return true
}

// EndTurn releases the session.
func (cs *ChatSession) EndTurn() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.IsProcessing = false
}
