// Package papertrading implements a single-user paper-trading ledger.
//
// The ledger is an ordered list of lots, one per buy. The Engine owns the
// in-memory ledger for a session: it appends lots on buys, decrements them on
// sells (FIFO single-lot matching, never splitting a sell across lots),
// aggregates lots into per-stock positions priced by an external PriceOracle,
// and persists the full ledger through a LedgerStore after every mutation.
//
// All monetary arithmetic is exact decimal; a stock whose price is unavailable
// is valued at cost, never at zero.
package papertrading
