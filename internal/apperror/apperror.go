// Package apperror provides the typed error kinds every ledger operation
// reports through. All failures surfaced to the operator go through this
// package to ensure consistency and to keep callers on errors.As/errors.Is
// instead of string matching.
package apperror

import "fmt"

// ValidationError reports bad input to a mutating operation: a required
// field missing, a non-positive quantity or rate, or a sale quantity that
// is invalid or exceeds stock. The operation performed no mutation.
type ValidationError struct {
	Detail string
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Detail
	}
	return fmt.Sprintf("%s: %v", e.Detail, e.Fields)
}

func NewValidation(detail string) *ValidationError {
	return &ValidationError{Detail: detail}
}

// NewFieldValidation wraps per-field failures from the request validator.
func NewFieldValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "validation failed", Fields: fields}
}

// FormatError reports a backup payload that does not have the Snapshot
// structure (inventory/sales missing or not arrays, unparsable JSON, or a
// record that cannot hold in the ledger). Rejected before any state change.
type FormatError struct {
	Detail string
}

func (e *FormatError) Error() string { return e.Detail }

func NewFormat(detail string) *FormatError {
	return &FormatError{Detail: detail}
}

// StoreError reports a durable read or write failure. Non-fatal: in-memory
// state remains authoritative for the session and the failure is logged as
// a warning, never rolled back.
type StoreError struct {
	Key string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Key, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func NewStore(key string, err error) *StoreError {
	return &StoreError{Key: key, Err: err}
}
