package papertrading

import (
	"iter"
	"maps"
	"slices"
)

// Ledger is the full ordered collection of lots for a session.
//
// Lots are kept in insertion order, which is the buy order. Lots are appended
// by buys and decremented by sells; they are never physically removed, even at
// zero quantity, so the ledger doubles as an audit trail of closed buys.
type Ledger struct {
	lots []Lot
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{lots: make([]Lot, 0)}
}

// Append appends lots to this ledger, preserving insertion order.
func (l *Ledger) Append(lots ...Lot) {
	l.lots = append(l.lots, lots...)
}

// Len returns the number of lots, including zero-quantity ones.
func (l *Ledger) Len() int { return len(l.lots) }

// Lots returns an iterator that yields each lot in buy order.
func (l *Ledger) Lots() iter.Seq2[int, Lot] {
	return func(yield func(int, Lot) bool) {
		for i, lot := range l.lots {
			if !yield(i, lot) {
				return
			}
		}
	}
}

// Symbols returns the distinct symbols present in the ledger, sorted.
// Symbols whose every lot reached zero quantity are included: they still
// aggregate to an (empty) position.
func (l *Ledger) Symbols() []string {
	visited := make(map[string]struct{})
	for _, lot := range l.lots {
		visited[lot.Symbol] = struct{}{}
	}
	symbols := slices.Collect(maps.Keys(visited))
	slices.Sort(symbols)
	return symbols
}

// SellableSymbols returns the sorted symbols that still have at least one lot
// with positive remaining quantity. This is what a sell-target selector shows.
func (l *Ledger) SellableSymbols() []string {
	visited := make(map[string]struct{})
	for _, lot := range l.lots {
		if lot.Quantity > 0 {
			visited[lot.Symbol] = struct{}{}
		}
	}
	symbols := slices.Collect(maps.Keys(visited))
	slices.Sort(symbols)
	return symbols
}

// firstCoverable returns the index of the oldest lot for symbol whose remaining
// quantity covers the whole requested quantity, or -1 if no single lot does.
// Sells are never split across lots.
func (l *Ledger) firstCoverable(symbol string, quantity int64) int {
	for i, lot := range l.lots {
		if lot.Symbol == symbol && lot.Quantity >= quantity {
			return i
		}
	}
	return -1
}

// Equal reports whether two ledgers hold the same lots in the same order.
func (l *Ledger) Equal(o *Ledger) bool {
	if len(l.lots) != len(o.lots) {
		return false
	}
	for i := range l.lots {
		if !l.lots[i].Equal(o.lots[i]) {
			return false
		}
	}
	return true
}
