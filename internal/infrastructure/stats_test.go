package infrastructure

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats_Snapshot(t *testing.T) {
	stats := NewStats()
	stats.Record("web")
	stats.Record("web")
	stats.Record("telegram")
	stats.RecordSafetyHit()

	snapshot := stats.Snapshot()

	assert.EqualValues(t, 3, snapshot["turns_total"])
	assert.EqualValues(t, 1, snapshot["turns_with_safety"])

	perPlatform := snapshot["turns_by_platform"].(map[string]int64)
	assert.EqualValues(t, 2, perPlatform["web"])
	assert.EqualValues(t, 1, perPlatform["telegram"])
}

func TestStats_ConcurrentRecording(t *testing.T) {
	stats := NewStats()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stats.Record("web")
			stats.RecordSafetyHit()
		}()
	}
	wg.Wait()

	snapshot := stats.Snapshot()
	assert.EqualValues(t, 50, snapshot["turns_total"])
	assert.EqualValues(t, 50, snapshot["turns_with_safety"])
}
