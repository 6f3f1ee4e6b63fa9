package papertrading

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Ninad572/PaperTrading/date"
	"github.com/shopspring/decimal"
)

// Lot represents one discrete buy event.
//
// Its symbol, buy price and buy date are fixed for the lot's lifetime; only the
// remaining quantity changes, decremented by sells, and never below zero.
// A lot whose quantity reached zero stays in the ledger as an inert record of a
// fully-closed buy.
type Lot struct {
	Symbol   string    // ticker symbol, uppercase
	Quantity int64     // remaining shares, >= 0
	BuyPrice Money     // price per share at purchase time
	BuyDate  date.Date // calendar date of the purchase
}

// NewLot creates a validated Lot. The symbol is case-normalized to uppercase.
func NewLot(symbol string, quantity int64, buyPrice Money, buyDate date.Date) (Lot, error) {
	symbol = NormalizeSymbol(symbol)
	if symbol == "" {
		return Lot{}, fmt.Errorf("%w: empty symbol", ErrInvalidInput)
	}
	if quantity <= 0 {
		return Lot{}, fmt.Errorf("%w: quantity must be positive, got %d", ErrInvalidInput, quantity)
	}
	if !buyPrice.IsPositive() {
		return Lot{}, fmt.Errorf("%w: buy price must be positive, got %s", ErrInvalidInput, buyPrice)
	}
	if buyDate.IsZero() {
		buyDate = date.Today()
	}
	return Lot{Symbol: symbol, Quantity: quantity, BuyPrice: buyPrice, BuyDate: buyDate}, nil
}

// NormalizeSymbol returns the canonical form of a ticker symbol.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// Invested returns the remaining invested amount of the lot (quantity * buy price).
func (l Lot) Invested() Money { return l.BuyPrice.MulQuantity(l.Quantity) }

// Equal reports whether two lots are identical field for field.
func (l Lot) Equal(o Lot) bool {
	return l.Symbol == o.Symbol &&
		l.Quantity == o.Quantity &&
		l.BuyPrice.Equal(o.BuyPrice) &&
		l.BuyDate == o.BuyDate
}

// MarshalJSON implements the json.Marshaler interface for Lot, keeping the
// persisted key order canonical.
func (l Lot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", l.Symbol)
	w.Append("quantity", l.Quantity)
	w.Append("buyPrice", l.BuyPrice.Decimal())
	w.Optional("currency", l.BuyPrice.Currency())
	w.Append("buyDate", l.BuyDate)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Lot.
// It handles the persisted form where price and currency are separate fields.
// Records are held to the same rules as NewLot (except that a zero remaining
// quantity is valid, it marks a fully-closed buy), so a hand-edited file
// cannot smuggle in lots the engine could never have produced.
func (l *Lot) UnmarshalJSON(data []byte) error {
	var temp struct {
		Symbol   string          `json:"symbol"`
		Quantity int64           `json:"quantity"`
		BuyPrice decimal.Decimal `json:"buyPrice"`
		Currency string          `json:"currency"`
		BuyDate  date.Date       `json:"buyDate"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	symbol := NormalizeSymbol(temp.Symbol)
	if symbol == "" {
		return fmt.Errorf("%w: lot record has an empty symbol", ErrInvalidInput)
	}
	if temp.Quantity < 0 {
		return fmt.Errorf("%w: lot record for %s has negative quantity %d", ErrInvalidInput, symbol, temp.Quantity)
	}
	if !temp.BuyPrice.IsPositive() {
		return fmt.Errorf("%w: lot record for %s has non-positive buy price %s", ErrInvalidInput, symbol, temp.BuyPrice)
	}

	l.Symbol = symbol
	l.Quantity = temp.Quantity
	l.BuyPrice = M(temp.BuyPrice, temp.Currency)
	l.BuyDate = temp.BuyDate
	return nil
}
