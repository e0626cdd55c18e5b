package timing

import (
	"context"
	"sync"
	"time"
)

type timingKey struct{}

type TimingInfo struct {
	Operation string
	StartTime time.Time
}

// Record is one completed measurement.
type Record struct {
	Operation string
	Duration  time.Duration
}

// Tracker collects stage durations. It is safe for concurrent use; the
// estimator and the transmission builder report from separate goroutines.
type Tracker struct {
	mu      sync.RWMutex
	timings map[string][]time.Duration
	order   []Record
	enabled bool
}

func NewTracker() *Tracker {
	return &Tracker{
		timings: make(map[string][]time.Duration),
		enabled: true,
	}
}

// StartTiming returns a context carrying the operation start time. The
// parent context may be nil.
func (tt *Tracker) StartTiming(parent context.Context, operation string) context.Context {
	if parent == nil {
		parent = context.Background()
	}
	if !tt.isEnabled() {
		return parent
	}

	return context.WithValue(parent, timingKey{}, TimingInfo{
		Operation: operation,
		StartTime: time.Now(),
	})
}

// EndTiming records the time elapsed since the matching StartTiming and
// returns it. Contexts without timing information yield 0.
func (tt *Tracker) EndTiming(ctx context.Context) time.Duration {
	if !tt.isEnabled() {
		return 0
	}

	timingInfo, ok := ctx.Value(timingKey{}).(TimingInfo)
	if !ok {
		return 0
	}

	duration := time.Since(timingInfo.StartTime)

	tt.mu.Lock()
	tt.timings[timingInfo.Operation] = append(tt.timings[timingInfo.Operation], duration)
	tt.order = append(tt.order, Record{Operation: timingInfo.Operation, Duration: duration})
	tt.mu.Unlock()

	return duration
}

func (tt *Tracker) GetTimings(operation string) []time.Duration {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	timings := tt.timings[operation]
	if timings == nil {
		return nil
	}

	result := make([]time.Duration, len(timings))
	copy(result, timings)
	return result
}

// Records returns every measurement in completion order.
func (tt *Tracker) Records() []Record {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	result := make([]Record, len(tt.order))
	copy(result, tt.order)
	return result
}

func (tt *Tracker) GetAverageTime(operation string) time.Duration {
	timings := tt.GetTimings(operation)
	if len(timings) == 0 {
		return 0
	}

	var total time.Duration
	for _, duration := range timings {
		total += duration
	}

	return total / time.Duration(len(timings))
}

func (tt *Tracker) SetEnabled(enabled bool) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	tt.enabled = enabled
}

func (tt *Tracker) isEnabled() bool {
	tt.mu.RLock()
	defer tt.mu.RUnlock()
	return tt.enabled
}

func (tt *Tracker) Reset() {
	tt.mu.Lock()
	defer tt.mu.Unlock()

	tt.timings = make(map[string][]time.Duration)
	tt.order = nil
}
