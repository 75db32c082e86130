package infrastructure

import (
	"sync"
	"time"
)

// Stats keeps in-memory turn counters for the admin dashboard.
// Counters reset on restart; nothing is persisted.
type Stats struct {
	mu      sync.RWMutex
	turns   map[string]int64 // per platform
	safety  int64            // turns that carried safety data
	started time.Time
}

func NewStats() *Stats {
	return &Stats{
		turns:   make(map[string]int64),
		started: time.Now(),
	}
}

// Record counts one completed turn for a platform ("web", "telegram").
func (s *Stats) Record(platform string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns[platform]++
}

// RecordSafetyHit counts a turn whose reply embedded safety data.
func (s *Stats) RecordSafetyHit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.safety++
}

func (s *Stats) Snapshot() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	perPlatform := make(map[string]int64, len(s.turns))
	for platform, n := range s.turns {
		perPlatform[platform] = n
		total += n
	}

	return map[string]interface{}{
		"turns_total":       total,
		"turns_by_platform": perPlatform,
		"turns_with_safety": s.safety,
		"uptime_seconds":    int64(time.Since(s.started).Seconds()),
	}
}
