// Package trash governs the Active/Trashed/Deleted lifecycle shared by
// folders and files. The machine is stateless; the dispatcher consults it
// before every lifecycle transition. No transition ever happens
// automatically.
package trash

import (
	"errors"
	"fmt"
)

// State is the lifecycle position of an entity.
type State string

const (
	// Active entities appear in the primary tree.
	Active State = "active"
	// Trashed entities appear only in the trash view.
	Trashed State = "trashed"
	// Deleted is terminal: the entity exists neither locally nor remotely.
	Deleted State = "deleted"
)

// Action is a user-initiated lifecycle transition.
type Action string

const (
	// MoveToTrash soft-deletes an active entity.
	MoveToTrash Action = "trash"
	// Restore returns a trashed entity to the primary tree.
	Restore Action = "restore"
	// PurgeForever permanently deletes a trashed entity. It is only
	// reachable from the trash view; active entities cannot be purged.
	PurgeForever Action = "purge"
)

// ErrInvalidTransition is returned for any action not legal in the current
// state, including purging an entity that was never trashed.
var ErrInvalidTransition = errors.New("invalid trash transition")

// StateOf maps the persisted in_trash flag onto a lifecycle state. Deleted
// entities have no record, so a flag always means Active or Trashed.
func StateOf(inTrash bool) State {
	if inTrash {
		return Trashed
	}
	return Active
}

// Next returns the state an action leads to, or ErrInvalidTransition.
func Next(from State, action Action) (State, error) {
	switch {
	case from == Active && action == MoveToTrash:
		return Trashed, nil
	case from == Trashed && action == Restore:
		return Active, nil
	case from == Trashed && action == PurgeForever:
		return Deleted, nil
	}
	return from, fmt.Errorf("%w: cannot %s a %s entity", ErrInvalidTransition, action, from)
}

// Can reports whether an action is legal in the given state.
func Can(from State, action Action) bool {
	_, err := Next(from, action)
	return err == nil
}
