// Package store persists the platform's named record collections as
// JSON documents. Every mutation is expressed as "load full collection,
// compute new full collection, save full collection"; a single Save call
// may carry several collections and is applied as one atomic unit.
package store

import "context"

const (
	CollectionUsers              = "users"
	CollectionJobs               = "jobs"
	CollectionAssignments        = "assignments"
	CollectionStudentAssignments = "studentAssignments"
	CollectionApplications       = "applications"
	CollectionEvents             = "events"
)

// Change replaces the named collection with Value.
type Change struct {
	Collection string
	Value      any
}

type Store interface {
	// Load unmarshals the named collection into out. A collection that
	// has never been saved leaves out untouched and returns nil.
	Load(ctx context.Context, collection string, out any) error
	// Save replaces every listed collection. Either all changes are
	// observable by subsequent loads or none of them are.
	Save(ctx context.Context, changes ...Change) error
}
