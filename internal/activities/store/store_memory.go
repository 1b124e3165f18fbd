// Package store holds the in-memory activity registry.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"mergington/internal/activities/models"
)

// Sentinel errors returned by store implementations. Services translate these
// into domain errors; the store stays transport- and wording-agnostic.
var (
	ErrNotFound          = errors.New("activity not found")
	ErrAlreadyRegistered = errors.New("participant already registered")
)

// Error Contract:
// All store methods follow this error pattern:
// - Return ErrNotFound when the requested activity does not exist
// - Return ErrAlreadyRegistered when the email is already on the roster
// - Return nil for successful operations

// InMemoryStore stores activities in memory, keyed by name.
// All access is guarded by a single RWMutex; AddParticipant holds the write
// lock across its check-then-append sequence so concurrent signups for the
// same activity cannot interleave.
type InMemoryStore struct {
	mu         sync.RWMutex
	activities map[string]*models.Activity
}

// NewInMemory constructs an in-memory store seeded with the given activities.
// Input records are cloned, so callers may keep and mutate their own copies.
func NewInMemory(activities ...*models.Activity) *InMemoryStore {
	s := &InMemoryStore{}
	s.Reset(activities...)
	return s
}

// List returns a snapshot of the full registry. Returned records are clones;
// mutating them does not affect the store.
func (s *InMemoryStore) List(_ context.Context) (map[string]*models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make(map[string]*models.Activity, len(s.activities))
	for name, activity := range s.activities {
		snapshot[name] = activity.Clone()
	}
	return snapshot, nil
}

// Find returns a clone of the named activity.
func (s *InMemoryStore) Find(_ context.Context, name string) (*models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	activity, ok := s.activities[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return activity.Clone(), nil
}

// AddParticipant atomically appends email to the named activity's roster.
// The duplicate check and the append happen under one write lock. Activity
// names match case-sensitively. Capacity is descriptive only and never
// checked here.
func (s *InMemoryStore) AddParticipant(_ context.Context, name, email string) (*models.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	activity, ok := s.activities[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	if activity.HasParticipant(email) {
		return nil, fmt.Errorf("%q in %q: %w", email, name, ErrAlreadyRegistered)
	}
	activity.Participants = append(activity.Participants, email)
	return activity.Clone(), nil
}

// Reset replaces the registry contents with the given activities.
// Used by test harnesses to restore the seed between scenarios.
func (s *InMemoryStore) Reset(activities ...*models.Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activities = make(map[string]*models.Activity, len(activities))
	for _, a := range activities {
		clone := a.Clone()
		// Rosters serialize as arrays, never null.
		if clone.Participants == nil {
			clone.Participants = []string{}
		}
		s.activities[a.Name] = clone
	}
}

// Len returns the number of activities in the registry.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.activities)
}
