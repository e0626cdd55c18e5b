package timing

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerRecordsInCompletionOrder(t *testing.T) {
	tt := NewTracker()

	first := tt.StartTiming(context.Background(), "dark_channel")
	second := tt.StartTiming(context.TODO(), "reconstruct")
	time.Sleep(time.Millisecond)

	assert.Positive(t, tt.EndTiming(second))
	assert.Positive(t, tt.EndTiming(first))

	records := tt.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "reconstruct", records[0].Operation)
	assert.Equal(t, "dark_channel", records[1].Operation)
	assert.Len(t, tt.GetTimings("dark_channel"), 1)
	assert.Positive(t, tt.GetAverageTime("dark_channel"))
}

func TestTrackerKeepsParentContext(t *testing.T) {
	tt := NewTracker()
	parent, cancel := context.WithCancel(context.Background())

	ctx := tt.StartTiming(parent, "stage")
	cancel()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestTrackerDisabled(t *testing.T) {
	tt := NewTracker()
	tt.SetEnabled(false)

	ctx := tt.StartTiming(context.Background(), "stage")
	assert.Zero(t, tt.EndTiming(ctx))
	assert.Empty(t, tt.Records())
}

func TestTrackerIgnoresUntimedContext(t *testing.T) {
	tt := NewTracker()
	assert.Zero(t, tt.EndTiming(context.Background()))
	assert.Zero(t, tt.GetAverageTime("missing"))
}

func TestTrackerConcurrentUse(t *testing.T) {
	tt := NewTracker()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tt.EndTiming(tt.StartTiming(context.Background(), "stage"))
		}()
	}
	wg.Wait()

	assert.Len(t, tt.GetTimings("stage"), 8)

	tt.Reset()
	assert.Empty(t, tt.Records())
}
