package papertrading

import (
	"context"

	"github.com/Ninad572/PaperTrading/date"
)

// Sample is one (date, close price) point of a symbol's price history.
type Sample struct {
	Date  date.Date
	Close Money
}

// PriceOracle is the external source of current and historical market prices.
//
// LatestPrice returns the most recent known close for a symbol; any failure
// (unknown symbol, transport error, timeout) is an error, never a zero price.
// History returns an ordered series of daily closes and is only used for
// display; the engine depends on LatestPrice alone.
type PriceOracle interface {
	LatestPrice(ctx context.Context, symbol string) (Money, error)
	History(ctx context.Context, symbol, period, interval string) ([]Sample, error)
}
