package papertrading

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Ninad572/PaperTrading/date"
)

// priceTimeout bounds every price oracle call. Exceeding it is treated as
// price unavailability, never as a zero price.
const priceTimeout = 10 * time.Second

// Engine owns the in-memory ledger for the duration of a session and keeps it
// consistent with its durable store: the ledger is loaded once at session
// start and saved in full after every mutating operation.
//
// An Engine is not safe for concurrent use; a session owns its engine
// exclusively.
type Engine struct {
	ledger   *Ledger
	store    LedgerStore
	oracle   PriceOracle
	currency string
}

// NewEngine loads the ledger from the store and returns an engine bound to it.
// A ledger is denominated in a single currency for its whole life: loading one
// whose lots carry a different currency is rejected, so mixed-currency
// arithmetic can never be reached through an engine.
func NewEngine(store LedgerStore, oracle PriceOracle, currency string) (*Engine, error) {
	ledger, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("could not load ledger: %w", err)
	}
	for _, lot := range ledger.Lots() {
		if c := lot.BuyPrice.Currency(); c != "" && c != currency {
			return nil, fmt.Errorf("%w: ledger is denominated in %s, not %s", ErrInvalidInput, c, currency)
		}
	}
	return &Engine{ledger: ledger, store: store, oracle: oracle, currency: currency}, nil
}

// Ledger exposes the raw ledger for read access (listing lots and symbols).
func (e *Engine) Ledger() *Ledger { return e.ledger }

// Currency returns the ledger's currency code.
func (e *Engine) Currency() string { return e.currency }

// latestPrice fetches the current price for a symbol with a bounded timeout,
// mapping any oracle failure to ErrPriceUnavailable.
func (e *Engine) latestPrice(ctx context.Context, symbol string) (Money, error) {
	ctx, cancel := context.WithTimeout(ctx, priceTimeout)
	defer cancel()

	price, err := e.oracle.LatestPrice(ctx, symbol)
	if err != nil {
		return Money{}, fmt.Errorf("%w for %s: %v", ErrPriceUnavailable, symbol, err)
	}
	if !price.IsPositive() {
		return Money{}, fmt.Errorf("%w for %s: oracle returned %s", ErrPriceUnavailable, symbol, price)
	}
	return M(price.Decimal(), e.currency), nil
}

// Aggregate computes the per-symbol positions and the portfolio-wide invested
// and profit/loss totals. It queries the oracle once per distinct symbol; a
// symbol whose price is unavailable is valued at cost with zero profit/loss.
// Aggregation never mutates the ledger and never fails.
func (e *Engine) Aggregate(ctx context.Context) ([]Position, Summary) {
	return aggregate(e.ledger, e.currency, func(symbol string) (Money, bool) {
		price, err := e.latestPrice(ctx, symbol)
		if err != nil {
			log.Printf("aggregate: %v, valuing %s at cost", err, symbol)
			return Money{}, false
		}
		return price, true
	})
}

// Buy fetches the current price for symbol and appends a new lot of quantity
// shares dated today. Distinct buys always create distinct lots; buys are
// never merged, preserving the per-lot cost basis.
//
// The ledger is saved before Buy reports success. If the save fails the
// in-memory buy stands and the returned error is a *PersistenceError.
func (e *Engine) Buy(ctx context.Context, symbol string, quantity int64) (Lot, error) {
	symbol = NormalizeSymbol(symbol)
	if symbol == "" {
		return Lot{}, fmt.Errorf("%w: empty symbol", ErrInvalidInput)
	}
	if quantity <= 0 {
		return Lot{}, fmt.Errorf("%w: buy quantity must be positive, got %d", ErrInvalidInput, quantity)
	}

	price, err := e.latestPrice(ctx, symbol)
	if err != nil {
		return Lot{}, err
	}

	lot, err := NewLot(symbol, quantity, price, date.Today())
	if err != nil {
		return Lot{}, err
	}
	e.ledger.Append(lot)

	if err := e.store.Save(e.ledger); err != nil {
		return lot, &PersistenceError{Op: "buy", Err: err}
	}
	return lot, nil
}

// Sell sells quantity shares of symbol at the current oracle price and returns
// the realized profit or loss, (sell price - buy price) * quantity.
//
// Matching is FIFO single-lot: the oldest lot whose remaining quantity covers
// the whole requested quantity is decremented; a sell is never split across
// lots. When no single lot covers it, Sell fails with ErrInsufficientQuantity
// even if the sum across lots would suffice, and the ledger is unchanged.
//
// The ledger is saved before Sell reports success, with the same durability
// caveat as Buy.
func (e *Engine) Sell(ctx context.Context, symbol string, quantity int64) (Money, error) {
	symbol = NormalizeSymbol(symbol)
	if symbol == "" {
		return Money{}, fmt.Errorf("%w: empty symbol", ErrInvalidInput)
	}
	if quantity <= 0 {
		return Money{}, fmt.Errorf("%w: sell quantity must be positive, got %d", ErrInvalidInput, quantity)
	}

	// The sell price is fetched fresh at sell time, not the buy-time price.
	price, err := e.latestPrice(ctx, symbol)
	if err != nil {
		return Money{}, err
	}

	i := e.ledger.firstCoverable(symbol, quantity)
	if i < 0 {
		return Money{}, fmt.Errorf("%w: no single lot of %s holds %d shares", ErrInsufficientQuantity, symbol, quantity)
	}

	lot := &e.ledger.lots[i]
	lot.Quantity -= quantity
	profitLoss := price.Sub(lot.BuyPrice).MulQuantity(quantity)

	if err := e.store.Save(e.ledger); err != nil {
		return profitLoss, &PersistenceError{Op: "sell", Err: err}
	}
	return profitLoss, nil
}

// Clear unconditionally discards all lots and persists the empty ledger.
// It is idempotent and cannot fail except on persistence I/O.
func (e *Engine) Clear() error {
	e.ledger = NewLedger()
	if err := e.store.Save(e.ledger); err != nil {
		return &PersistenceError{Op: "clear", Err: err}
	}
	return nil
}

// Save retries persisting the current ledger, for callers recovering from a
// PersistenceError.
func (e *Engine) Save() error {
	return e.store.Save(e.ledger)
}
