// Package registry holds the in-memory activity store.
package registry

import (
	"context"
	"sync"

	"example.com/signup/internal/domain"
)

// MemoryRegistry stores activities in memory for the lifetime of the process.
// All mutations go through the mutex so roster uniqueness holds even when the
// HTTP layer handles requests concurrently.
type MemoryRegistry struct {
	mu         sync.RWMutex
	activities map[string]domain.Activity
}

// NewMemoryRegistry constructs a registry populated with the given catalog.
func NewMemoryRegistry(catalog []domain.Activity) *MemoryRegistry {
	r := &MemoryRegistry{activities: make(map[string]domain.Activity, len(catalog))}
	for _, activity := range catalog {
		r.activities[activity.Name] = activity
	}
	return r
}

// List implements domain.RosterRepository. The returned map and rosters are
// copies; callers cannot reach the registry's internal state through them.
func (r *MemoryRegistry) List(ctx context.Context) (map[string]domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]domain.Activity, len(r.activities))
	for name, activity := range r.activities {
		out[name] = copyActivity(activity)
	}
	return out, nil
}

// Get returns a copy of the named activity, or ErrActivityNotFound.
func (r *MemoryRegistry) Get(ctx context.Context, name string) (*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, ok := r.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	copied := copyActivity(activity)
	return &copied, nil
}

// AddParticipant appends email to the roster, preserving insertion order.
func (r *MemoryRegistry) AddParticipant(ctx context.Context, name, email string) (*domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	if activity.HasParticipant(email) {
		return nil, domain.ErrAlreadyRegistered
	}

	activity.Participants = append(activity.Participants, email)
	r.activities[name] = activity

	copied := copyActivity(activity)
	return &copied, nil
}

// RemoveParticipant drops email from the roster.
func (r *MemoryRegistry) RemoveParticipant(ctx context.Context, name, email string) (*domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	if !activity.HasParticipant(email) {
		return nil, domain.ErrNotRegistered
	}

	participants := make([]string, 0, len(activity.Participants)-1)
	for _, existing := range activity.Participants {
		if existing != email {
			participants = append(participants, existing)
		}
	}
	activity.Participants = participants
	r.activities[name] = activity

	copied := copyActivity(activity)
	return &copied, nil
}

func copyActivity(activity domain.Activity) domain.Activity {
	participants := make([]string, len(activity.Participants))
	copy(participants, activity.Participants)
	activity.Participants = participants
	return activity
}
