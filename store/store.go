// Package store implements the storefront's durability contract: a small
// set of independently keyed JSON slots with last-writer-wins semantics.
// Callers that only care whether a value loaded treat every error as
// "absent"; callers that must distinguish a missing slot from a corrupt
// one check for ErrNotFound.
package store

import "errors"

// Slot keys. These are the only keys the application writes.
const (
	KeyUsers        = "broadcastMotionUsers"
	KeyCart         = "broadcastMotionCart"
	KeyOrders       = "broadcastMotionOrders"
	KeyToken        = "broadcastMotionToken"
	KeyLoggedInUser = "broadcastMotionLoggedInUser"
)

// ErrNotFound reports that a slot does not exist. Any other Get error
// means the slot exists but its contents do not parse.
var ErrNotFound = errors.New("store: key not found")

type Store interface {
	// Get unmarshals the slot into out. Returns ErrNotFound for an
	// absent slot and the decode error for a corrupt one.
	Get(key string, out any) error
	// Put marshals v into the slot, replacing any previous value.
	Put(key string, v any) error
	// Delete removes the slot. Deleting an absent slot is not an error.
	Delete(key string) error
}
