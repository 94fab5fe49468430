// Package memory implements the repository interfaces over in-process
// collections. Each store guards one slice with an RWMutex; reads hand out
// copies and writes replace whole records, so callers never observe a
// half-mutated entity. Insertion order is preserved across updates.
package memory

import (
	"time"

	"github.com/google/uuid"
)

// newID returns a time-ordered UUIDv7 string.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// stamp fills identity and timestamps on a freshly created record. Seed data
// may arrive with them already set, in which case they are kept.
func stamp(id *string, createdAt, updatedAt *time.Time) {
	now := time.Now().UTC()
	if *id == "" {
		*id = newID()
	}
	if createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt.IsZero() {
		*updatedAt = *createdAt
	}
}
