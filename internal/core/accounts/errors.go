package accounts

import (
	"errors"
	"fmt"
)

// ErrAccountNotFound is returned when an account lookup finds no matching
// record, including lookups for accounts owned by someone else
var ErrAccountNotFound = errors.New("calendar account not found")

// StoreError wraps storage-layer failures from the account repository
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("account store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
