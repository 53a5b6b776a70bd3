package workflow

import (
	"context"
	"sort"
	"sync"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

// MemoryStore is an in-memory Store. Events are append-only here exactly as
// in the SQLite implementation: nothing ever removes or rewrites one.
type MemoryStore struct {
	mu       sync.RWMutex
	requests map[RequestID]RecordsRequest
	events   []RequestEvent
	meetings map[MeetingID]Meeting
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		requests: make(map[RequestID]RecordsRequest),
		meetings: make(map[MeetingID]Meeting),
	}
}

func (m *MemoryStore) SaveRequest(_ context.Context, r *RecordsRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[r.ID] = *r
	return nil
}

func (m *MemoryStore) GetRequest(_ context.Context, id RequestID) (*RecordsRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.requests[id]
	if !ok {
		return nil, ErrRequestNotFound
	}
	copied := r
	return &copied, nil
}

func (m *MemoryStore) ListRequestsByStatus(_ context.Context, status RequestStatus) ([]*RecordsRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*RecordsRequest
	for _, r := range m.requests {
		if r.Status == status {
			copied := r
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ReceivedAt.Before(result[j].ReceivedAt)
	})
	return result, nil
}

func (m *MemoryStore) AppendEvent(_ context.Context, e RequestEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, e)
	return nil
}

func (m *MemoryStore) ListEvents(_ context.Context, id RequestID) ([]RequestEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []RequestEvent
	for _, e := range m.events {
		if e.RequestID == id {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *MemoryStore) SaveMeeting(_ context.Context, mt *Meeting) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.meetings[mt.ID] = *mt
	return nil
}

func (m *MemoryStore) GetMeeting(_ context.Context, id MeetingID) (*Meeting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	mt, ok := m.meetings[id]
	if !ok {
		return nil, ErrMeetingNotFound
	}
	copied := mt
	return &copied, nil
}

func (m *MemoryStore) ListMeetings(_ context.Context) ([]*Meeting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*Meeting
	for _, mt := range m.meetings {
		copied := mt
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartsAt.Before(result[j].StartsAt)
	})
	return result, nil
}
