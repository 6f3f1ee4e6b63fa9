package papertrading

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the portfolio engine. They are all recoverable:
// the ledger remains usable after any of them.
var (
	// ErrPriceUnavailable reports that the price oracle could not supply a
	// price for a symbol at the needed moment. No mutation occurred.
	ErrPriceUnavailable = errors.New("price unavailable")

	// ErrInsufficientQuantity reports that no single lot holds enough remaining
	// quantity to cover the requested sell. No mutation occurred.
	ErrInsufficientQuantity = errors.New("insufficient quantity")

	// ErrInvalidInput reports a malformed request (non-positive quantity,
	// empty symbol). Rejected before touching the ledger.
	ErrInvalidInput = errors.New("invalid input")
)

// PersistenceError reports that the ledger store failed to durably save after
// a successful in-memory mutation. The mutation stands; the caller can retry
// persistence with Engine.Save.
type PersistenceError struct {
	Op  string // the mutating operation that triggered the save: "buy", "sell", "clear"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("ledger mutated by %s but could not be saved: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
