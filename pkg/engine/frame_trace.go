package engine

import (
	"sync"
	"time"
)

const (
	batchTraceSamplesDefault   = 240
	defaultBatchTraceThreshold = 16667 * time.Microsecond
)

// BatchSample is a single dispatch batch trace sample.
type BatchSample struct {
	Timestamp     int64   `json:"ts" yaml:"ts"`
	BatchMs       float64 `json:"batchMs" yaml:"batch_ms"`
	Inputs        int     `json:"inputs" yaml:"inputs"`
	TimersFired   int     `json:"timersFired" yaml:"timers_fired"`
	Messages      int     `json:"messages" yaml:"messages"`
	Grabs         int     `json:"grabs" yaml:"grabs"`
	PendingTimers int     `json:"pendingTimers" yaml:"pending_timers"`
}

// BatchTimeline is a chronological view of recent batches.
type BatchTimeline struct {
	Samples     []BatchSample `json:"samples" yaml:"samples"`
	SlowBatches int           `json:"slowBatches" yaml:"slow_batches"`
	ThresholdMs float64       `json:"thresholdMs" yaml:"threshold_ms"`
}

// BatchTraceBuffer stores recent batch samples in a ring buffer.
type BatchTraceBuffer struct {
	mu        sync.RWMutex
	samples   []BatchSample
	index     int
	count     int
	slow      int
	threshold time.Duration
}

// NewBatchTraceBuffer creates a new batch trace buffer.
func NewBatchTraceBuffer(capacity int, threshold time.Duration) *BatchTraceBuffer {
	if capacity <= 0 {
		capacity = batchTraceSamplesDefault
	}
	if threshold <= 0 {
		threshold = defaultBatchTraceThreshold
	}
	return &BatchTraceBuffer{
		samples:   make([]BatchSample, capacity),
		threshold: threshold,
	}
}

// Capacity returns the buffer capacity.
func (b *BatchTraceBuffer) Capacity() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.samples)
}

// Add records a sample and updates the slow batch count.
func (b *BatchTraceBuffer) Add(sample BatchSample, d time.Duration) {
	b.mu.Lock()
	b.samples[b.index] = sample
	b.index = (b.index + 1) % len(b.samples)
	if b.count < len(b.samples) {
		b.count++
	}
	if d > b.threshold {
		b.slow++
	}
	b.mu.Unlock()
}

// Snapshot returns a chronological copy of samples and stats.
func (b *BatchTraceBuffer) Snapshot() BatchTimeline {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.count == 0 {
		return BatchTimeline{ThresholdMs: durationToMillis(b.threshold)}
	}

	result := make([]BatchSample, b.count)
	if b.count < len(b.samples) {
		copy(result, b.samples[:b.count])
	} else {
		copy(result, b.samples[b.index:])
		copy(result[len(b.samples)-b.index:], b.samples[:b.index])
	}

	return BatchTimeline{
		Samples:     result,
		SlowBatches: b.slow,
		ThresholdMs: durationToMillis(b.threshold),
	}
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
