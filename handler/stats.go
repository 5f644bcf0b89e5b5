package handler

import "sync/atomic"

// Stats tracks handler statistics
type Stats struct {
	// ProcessedTotal counts lines written successfully
	ProcessedTotal uint64
	// FailedTotal counts lines whose write returned an error
	FailedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	atomic.AddUint64(&s.ProcessedTotal, 1)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.FailedTotal, 1)
}

// GetProcessed returns the processed count
func (s *Stats) GetProcessed() uint64 {
	return atomic.LoadUint64(&s.ProcessedTotal)
}

// GetFailed returns the failed count
func (s *Stats) GetFailed() uint64 {
	return atomic.LoadUint64(&s.FailedTotal)
}

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	ProcessedTotal uint64
	FailedTotal    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		ProcessedTotal: s.GetProcessed(),
		FailedTotal:    s.GetFailed(),
	}
}
