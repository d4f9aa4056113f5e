// Package store is the durable key-value adapter the ledger persists
// through. Two named JSON blobs exist: the inventory collection and the
// sales collection. The ledger engine owns the in-memory state; the store
// is a best-effort mirror of it, so implementations tolerate missing or
// corrupt data by leaving the destination at its empty default.
package store

import "context"

// Keys under which the two ledger collections are persisted.
const (
	KeyInventory = "inventory"
	KeySales     = "sales"
)

// Store defines the data access contract for ledger persistence.
// The engine depends on this interface, not on a concrete backend,
// enabling clean unit testing via stubs.
type Store interface {
	// Get unmarshals the JSON blob stored under key into dest.
	// A missing or corrupt blob leaves dest untouched and returns nil —
	// the caller degrades to an empty collection. Only an I/O-level
	// failure returns an error (an *apperror.StoreError).
	Get(ctx context.Context, key string, dest interface{}) error

	// Set replaces the blob stored under key with the JSON encoding of
	// value. Best-effort: a returned error is reported as a warning by
	// callers, never rolled back into in-memory state.
	Set(ctx context.Context, key string, value interface{}) error
}
