// Package models defines the activity registry's domain types.
package models

import "slices"

// Activity is a named extracurricular offering with descriptive metadata and
// a participant roster. Activities are keyed by Name on the wire, so the name
// itself is not serialized inside the record.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Clone returns a deep copy of the activity. Stores hand out clones so
// callers cannot mutate registry state behind the lock.
func (a *Activity) Clone() *Activity {
	if a == nil {
		return nil
	}
	clone := *a
	clone.Participants = slices.Clone(a.Participants)
	return &clone
}

// HasParticipant reports whether email is already on the roster.
// Matching is exact; emails are opaque strings.
func (a *Activity) HasParticipant(email string) bool {
	return slices.Contains(a.Participants, email)
}

// SignupResult confirms a successful signup.
type SignupResult struct {
	Activity     string
	Email        string
	Message      string
	Participants int
}
