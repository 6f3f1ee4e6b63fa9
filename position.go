package papertrading

// Position is the derived per-symbol aggregate of all lots sharing a symbol.
// It is computed on demand and never stored.
type Position struct {
	Symbol       string
	Quantity     int64 // sum of remaining quantities
	Invested     Money // sum of quantity * buy price
	CurrentValue Money // quantity * latest price, or Invested when unpriced
	ProfitLoss   Money // CurrentValue - Invested, zero when unpriced
	Priced       bool  // false when the oracle had no price for the symbol
}

// Summary holds the portfolio-wide scalars of an aggregation.
type Summary struct {
	Invested   Money
	ProfitLoss Money
}

// aggregate groups the ledger's lots by symbol and computes per-symbol and
// portfolio-wide totals. The price function returns the latest known price for
// a symbol, or false when unavailable; an unpriced position is valued at cost
// (break-even), never at zero.
//
// Each lot contributes to exactly one position. The sums are commutative, so
// the scalars do not depend on traversal order; positions are returned sorted
// by symbol for stable display.
func aggregate(ledger *Ledger, currency string, price func(symbol string) (Money, bool)) ([]Position, Summary) {
	summary := Summary{Invested: M(0, currency), ProfitLoss: M(0, currency)}

	byGroup := make(map[string]*Position)
	for _, lot := range ledger.lots {
		pos, ok := byGroup[lot.Symbol]
		if !ok {
			pos = &Position{Symbol: lot.Symbol, Invested: M(0, currency)}
			byGroup[lot.Symbol] = pos
		}
		pos.Quantity += lot.Quantity
		pos.Invested = pos.Invested.Add(lot.Invested())
	}

	positions := make([]Position, 0, len(byGroup))
	for _, symbol := range ledger.Symbols() {
		pos := byGroup[symbol]
		if latest, ok := price(symbol); ok {
			pos.CurrentValue = latest.MulQuantity(pos.Quantity)
			pos.ProfitLoss = pos.CurrentValue.Sub(pos.Invested)
			pos.Priced = true
		} else {
			// Valuation frozen at cost when the price is unknown.
			pos.CurrentValue = pos.Invested
			pos.ProfitLoss = M(0, currency)
		}
		summary.Invested = summary.Invested.Add(pos.Invested)
		summary.ProfitLoss = summary.ProfitLoss.Add(pos.ProfitLoss)
		positions = append(positions, *pos)
	}
	return positions, summary
}
