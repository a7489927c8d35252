// Package audit records a per-order change history so merchandisers can
// trace when breakdowns, components, and schedules were edited.
package audit

import (
	"sync"
	"time"
)

// Entry is one recorded change against an order
type Entry struct {
	OrderID  string    `json:"order_id"`
	Action   string    `json:"action"`
	Detail   string    `json:"detail"`
	Recorded time.Time `json:"recorded"`
	Sequence int       `json:"sequence"`
}

// Trail is an append-only in-memory change log keyed by order id
type Trail struct {
	mu       sync.RWMutex
	streams  map[string][]Entry
	sequence int
}

// NewTrail creates an empty audit trail
func NewTrail() *Trail {
	return &Trail{
		streams: make(map[string][]Entry),
	}
}

// Record appends a change entry to an order's stream
func (t *Trail) Record(orderID, action, detail string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.sequence++
	t.streams[orderID] = append(t.streams[orderID], Entry{
		OrderID:  orderID,
		Action:   action,
		Detail:   detail,
		Recorded: time.Now(),
		Sequence: t.sequence,
	})
}

// Entries returns a copy of an order's change history in record order
func (t *Trail) Entries(orderID string) []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	stream := t.streams[orderID]
	out := make([]Entry, len(stream))
	copy(out, stream)
	return out
}

// Len returns the total number of recorded entries across all orders
func (t *Trail) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	total := 0
	for _, stream := range t.streams {
		total += len(stream)
	}
	return total
}
