package common

import "github.com/google/uuid"

// ID is a prefixed record identifier, e.g. "job_5f0c…". The prefix names
// the record kind and matches the layout the store has always persisted.
type ID string

func NewID(prefix string) ID {
	return ID(prefix + "_" + uuid.NewString())
}

func (id ID) String() string {
	return string(id)
}

func (id ID) IsZero() bool {
	return id == ""
}
