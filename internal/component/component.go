// Package component discovers, selects and removes UI components beneath the
// src/components/ui directory.
package component

import (
	"errors"
)

var (
	// ErrNotFound is returned when neither a directory nor a suffixed file exists for a component.
	ErrNotFound = errors.New("component not found")
	// ErrInvalidName is returned for names that would resolve outside the components directory.
	ErrInvalidName = errors.New("invalid component name")
	// ErrNothingToDo is returned when no components were discovered.
	ErrNothingToDo = errors.New("no components found")
	// ErrNothingSelected is returned when the resolved selection is empty.
	ErrNothingSelected = errors.New("no components selected or specified for removal")
)

// Kind is the filesystem shape of a component.
type Kind string

const (
	KindFile      Kind = "file"
	KindDirectory Kind = "directory"
)

// Status is the result of processing a single component.
type Status string

const (
	StatusRemoved   Status = "removed"
	StatusSimulated Status = "simulated"
	StatusNotFound  Status = "not-found"
	StatusError     Status = "error"
)

// Succeeded reports whether the status counts towards the successful total.
func (s Status) Succeeded() bool {
	return s == StatusRemoved || s == StatusSimulated
}

// Target is a located component on disk.
type Target struct {
	Name string
	Path string
	Kind Kind
}

// Outcome is the result of removing, or simulating the removal of, a single component.
type Outcome struct {
	Name   string
	Status Status
	Kind   Kind
	// Path is relative to the working directory. Empty if the component was not found.
	Path string
	// Err is set for StatusNotFound and StatusError.
	Err error
}
