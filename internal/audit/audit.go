// Package audit is a bounded in-memory log of operation outcomes. It is the
// only shared mutable state in the service and is injected into the server
// rather than living as a package-level singleton.
package audit

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultCapacity bounds the ring when the configured capacity is unset.
const DefaultCapacity = 1000

// Entry is one recorded operation outcome. Content-bearing parameter values
// are redacted to length markers by the caller before recording.
type Entry struct {
	// ID uniquely identifies the entry
	ID string `json:"id"`

	// Timestamp is UTC RFC3339, set at record time when empty
	Timestamp string `json:"timestamp"`

	// Operation names what ran, ex: "reverse_complement"
	Operation string `json:"operation"`

	// Endpoint is the HTTP path the operation was invoked through
	Endpoint string `json:"endpoint"`

	// Parameters are the request parameters with content fields redacted
	Parameters map[string]interface{} `json:"parameters"`

	// Success reports whether the operation completed without error
	Success bool `json:"success"`

	// ExecutionTimeMS is the wall-clock duration of the operation
	ExecutionTimeMS float64 `json:"execution_time_ms"`

	// ResultSummary carries small facts about the result, never content
	ResultSummary map[string]interface{} `json:"result_summary"`

	// ErrorMessage holds the failure message for unsuccessful operations
	ErrorMessage string `json:"error_message,omitempty"`
}

// Stats aggregates the retained entries.
type Stats struct {
	TotalOperations      int            `json:"total_operations"`
	SuccessfulOperations int            `json:"successful_operations"`
	FailedOperations     int            `json:"failed_operations"`
	SuccessRate          float64        `json:"success_rate"`
	OperationsByType     map[string]int `json:"operations_by_type"`
	AverageExecutionMS   float64        `json:"average_execution_time_ms"`
}

// Log retains at most capacity entries, evicting the oldest first. Appends
// and reads serialize under a mutex; recording never fails the caller.
type Log struct {
	mu       sync.Mutex
	entries  []Entry
	capacity int
}

// NewLog returns a Log bounded at capacity, falling back to the default for
// non-positive values.
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{capacity: capacity}
}

// Record appends an entry, filling in the ID and timestamp when unset and
// evicting the oldest entries beyond capacity.
func (l *Log) Record(e Entry) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp == "" {
		e.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, e)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[len(l.entries)-l.capacity:]
	}
}

// Entries returns a newest-first snapshot, optionally filtered by operation
// name and success. A non-positive limit returns everything retained.
func (l *Log) Entries(limit int, operation string, successOnly *bool) []Entry {
	l.mu.Lock()
	snapshot := make([]Entry, len(l.entries))
	copy(snapshot, l.entries)
	l.mu.Unlock()

	filtered := snapshot[:0]
	for _, e := range snapshot {
		if operation != "" && e.Operation != operation {
			continue
		}
		if successOnly != nil && e.Success != *successOnly {
			continue
		}
		filtered = append(filtered, e)
	}

	// newest first
	for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
		filtered[i], filtered[j] = filtered[j], filtered[i]
	}

	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}

	out := make([]Entry, len(filtered))
	copy(out, filtered)
	return out
}

// Stats aggregates counts, success rate and average duration over the
// retained entries. An empty log yields the zero-valued stats.
func (l *Log) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()

	stats := Stats{OperationsByType: map[string]int{}}
	if len(l.entries) == 0 {
		return stats
	}

	var totalMS float64
	for _, e := range l.entries {
		stats.TotalOperations++
		if e.Success {
			stats.SuccessfulOperations++
		}
		stats.OperationsByType[e.Operation]++
		totalMS += e.ExecutionTimeMS
	}

	stats.FailedOperations = stats.TotalOperations - stats.SuccessfulOperations
	stats.SuccessRate = float64(stats.SuccessfulOperations) / float64(stats.TotalOperations)
	stats.AverageExecutionMS = totalMS / float64(stats.TotalOperations)

	return stats
}

// Operations returns the sorted unique operation names seen so far.
func (l *Log) Operations() []string {
	l.mu.Lock()
	seen := map[string]bool{}
	for _, e := range l.entries {
		seen[e.Operation] = true
	}
	l.mu.Unlock()

	ops := make([]string, 0, len(seen))
	for op := range seen {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

// Clear removes all entries and returns how many were dropped.
func (l *Log) Clear() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := len(l.entries)
	l.entries = nil
	return n
}

// Len returns the number of retained entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Capacity returns the retention bound.
func (l *Log) Capacity() int {
	return l.capacity
}
