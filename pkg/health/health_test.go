package health

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestTracker(clock *time.Time) *Tracker {
	t := NewTracker(nil)
	t.now = func() time.Time { return *clock }
	return t
}

func TestTracker_Lifecycle(t *testing.T) {
	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tracker := newTestTracker(&clock)

	assert.False(t, tracker.IsHealthy())
	assert.Equal(t, StatusUnknown, tracker.GetHealthInfo().Status)
	assert.Empty(t, tracker.GetHealthInfo().Uptime)

	tracker.MarkReady()
	assert.True(t, tracker.IsHealthy())
	assert.Equal(t, clock, tracker.GetHealthInfo().StartedAt)

	clock = clock.Add(90 * time.Second)
	info := tracker.GetHealthInfo()
	assert.Equal(t, StatusHealthy, info.Status)
	assert.Equal(t, "1m30s", info.Uptime)

	tracker.MarkDraining()
	assert.False(t, tracker.IsHealthy())
	assert.Equal(t, StatusDraining, tracker.GetHealthInfo().Status)
	assert.Equal(t, clock, tracker.GetHealthInfo().Since)
}

func TestTracker_DrainingIsFinal(t *testing.T) {
	clock := time.Now()
	tracker := newTestTracker(&clock)

	tracker.MarkReady()
	tracker.MarkDraining()
	tracker.MarkReady()

	assert.Equal(t, StatusDraining, tracker.GetHealthInfo().Status)
}

func TestTracker_ConcurrentAccess(t *testing.T) {
	tracker := NewTracker(nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			tracker.MarkReady()
		}()
		go func() {
			defer wg.Done()
			_ = tracker.GetHealthInfo()
			_ = tracker.IsHealthy()
		}()
	}
	wg.Wait()

	assert.True(t, tracker.IsHealthy())
}
