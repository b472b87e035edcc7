package models

import (
	"sync"
	"time"
)

// Result is a calculation together with the text shown for it
type Result struct {
	Calculation
	BaseText   string
	FinalText  string
	ComputedAt time.Time
}

// SessionStats summarises the calculations made while the window was open
type SessionStats struct {
	Calculations int
	Rejected     int
	LastResult   *Result
}

// ResultRepository keeps the last displayed result in memory. Nothing here
// outlives the process.
type ResultRepository struct {
	mu           sync.RWMutex
	last         *Result
	calculations int
	rejected     int
}

// NewResultRepository creates an empty repository
func NewResultRepository() *ResultRepository {
	return &ResultRepository{}
}

// Store records a successful calculation as the current result
func (r *ResultRepository) Store(result Result) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.last = &result
	r.calculations++
}

// RecordRejected counts an input that could not be parsed
func (r *ResultRepository) RecordRejected() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected++
}

// Last returns the current result, or nil after a reset
func (r *ResultRepository) Last() *Result {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.last == nil {
		return nil
	}
	result := *r.last
	return &result
}

// Reset drops the current result. Counters are kept for the session summary.
func (r *ResultRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = nil
}

// Stats returns a snapshot of the session counters
func (r *ResultRepository) Stats() SessionStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := SessionStats{
		Calculations: r.calculations,
		Rejected:     r.rejected,
	}
	if r.last != nil {
		last := *r.last
		stats.LastResult = &last
	}
	return stats
}
