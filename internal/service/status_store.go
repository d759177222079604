package service

import "sync"

// SubmissionStatus is the per-order outcome visible to the dashboard
type SubmissionStatus string

const (
	SubmissionPending   SubmissionStatus = "pending"
	SubmissionSucceeded SubmissionStatus = "succeeded"
	SubmissionFailed    SubmissionStatus = "failed"
)

// StatusEntry records the submission outcome for one order
type StatusEntry struct {
	Status       SubmissionStatus `json:"status"`
	TaxRequestID string           `json:"tax_request_id,omitempty"`
	Reason       string           `json:"reason,omitempty"`
}

// StatusStore is the in-memory order_id -> submission status map the UI
// polls for feedback. Entries live for the session only; a retry of the
// same order overwrites its entry. Guarded by a RWMutex because HTTP
// readers poll while the orchestration goroutine writes.
type StatusStore struct {
	mu      sync.RWMutex
	entries map[string]StatusEntry
}

// NewStatusStore creates an empty status store
func NewStatusStore() *StatusStore {
	return &StatusStore{
		entries: make(map[string]StatusEntry),
	}
}

func (s *StatusStore) Set(orderID string, entry StatusEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[orderID] = entry
}

func (s *StatusStore) Get(orderID string) (StatusEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[orderID]
	return entry, ok
}

// All returns a snapshot of every entry
func (s *StatusStore) All() map[string]StatusEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]StatusEntry, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out
}

func (s *StatusStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]StatusEntry)
}
