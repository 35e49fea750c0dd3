package tui

import (
	"github.com/fleetdesk/fleetdesk/internal/domain"
	"github.com/fleetdesk/fleetdesk/internal/search"
)

// Message types for the TUI

// ListChangedMsg signals that a list controller's state changed and the
// screen should pull a fresh snapshot.
type ListChangedMsg struct {
	Resource domain.Resource
}

// DetailLoadedMsg signals that a record detail has been loaded
type DetailLoadedMsg struct {
	Resource domain.Resource
	Record   domain.Record
}

// DetailFailedMsg signals that a record detail could not be loaded. The
// detail pane shows a full-screen error with a retry affordance.
type DetailFailedMsg struct {
	Resource domain.Resource
	ID       int64
	Err      error
}

// SubmitResultMsg carries the outcome of a form submission. When the
// backend rejected the input, Validation holds the field errors.
type SubmitResultMsg struct {
	Resource   domain.Resource
	Record     domain.Record
	Validation *domain.ValidationError
	Err        error
}

// RefsLoadedMsg carries reference candidates for a form picker. Partial
// is true when a secondary lookup failed and the list is incomplete.
type RefsLoadedMsg struct {
	Kind    RefKind
	Items   []search.Candidate
	Partial bool
}

// RefKind identifies which picker a reference load belongs to
type RefKind int

const (
	RefVehicles RefKind = iota
	RefContacts
	RefCategories
)

// StatusMsg sets a temporary status bar message
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

// TickMsg drives the spinner animation
type TickMsg struct{}
