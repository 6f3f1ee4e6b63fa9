package papertrading

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeLedger_canonicalForm(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(lotOf(t, "INFY.NS", 10, 1500.50, "2025-01-10"))

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, ledger); err != nil {
		t.Fatalf("EncodeLedger() error = %v", err)
	}

	want := `{"symbol":"INFY.NS","quantity":10,"buyPrice":1500.5,"currency":"INR","buyDate":"2025-01-10"}` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("encoded form:\n got %s\nwant %s", got, want)
	}
}

func TestLedger_roundTrip(t *testing.T) {
	testCases := []struct {
		name string
		lots []Lot
	}{
		{name: "empty ledger", lots: nil},
		{
			name: "single lot",
			lots: []Lot{lotOf(t, "AAPL", 10, 150, "2025-01-10")},
		},
		{
			name: "several symbols, insertion order preserved",
			lots: []Lot{
				lotOf(t, "GOOG", 2, 2800.25, "2025-01-02"),
				lotOf(t, "AAPL", 10, 150, "2025-01-03"),
				lotOf(t, "GOOG", 1, 2790, "2025-01-04"),
			},
		},
		{
			name: "zero-quantity lot retained",
			lots: func() []Lot {
				closed := lotOf(t, "TCS.NS", 4, 3500, "2024-11-20")
				closed.Quantity = 0
				return []Lot{closed}
			}(),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ledger := NewLedger()
			ledger.Append(tc.lots...)

			var buf bytes.Buffer
			if err := EncodeLedger(&buf, ledger); err != nil {
				t.Fatalf("EncodeLedger() error = %v", err)
			}
			loaded, err := DecodeLedger(&buf)
			if err != nil {
				t.Fatalf("DecodeLedger() error = %v", err)
			}
			if !loaded.Equal(ledger) {
				t.Errorf("load(save(L)) != L")
			}
			if loaded.Len() != len(tc.lots) {
				t.Errorf("loaded %d lots, want %d", loaded.Len(), len(tc.lots))
			}
		})
	}
}

func TestDecodeLedger_skipsEmptyLines(t *testing.T) {
	in := `{"symbol":"AAPL","quantity":10,"buyPrice":150,"currency":"INR","buyDate":"2025-01-10"}

{"symbol":"GOOG","quantity":1,"buyPrice":2800,"currency":"INR","buyDate":"2025-01-11"}
`
	ledger, err := DecodeLedger(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	if ledger.Len() != 2 {
		t.Errorf("decoded %d lots, want 2", ledger.Len())
	}
}

func TestDecodeLedger_badLine(t *testing.T) {
	in := `{"symbol":"AAPL","quantity":"ten"}`
	if _, err := DecodeLedger(strings.NewReader(in)); err == nil {
		t.Error("DecodeLedger() accepted a malformed lot")
	}
}

func TestDecodeLedger_normalizesSymbols(t *testing.T) {
	// A hand-edited file may carry a lowercase symbol; it must decode to the
	// same canonical form buys produce, or the lot would never match a sell.
	in := `{"symbol":" aapl ","quantity":10,"buyPrice":150,"currency":"INR","buyDate":"2025-01-10"}`
	ledger, err := DecodeLedger(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	for _, lot := range ledger.Lots() {
		if lot.Symbol != "AAPL" {
			t.Errorf("decoded symbol = %q, want %q", lot.Symbol, "AAPL")
		}
	}
	if ledger.firstCoverable("AAPL", 5) != 0 {
		t.Error("decoded lot does not match its canonical symbol")
	}
}

func TestDecodeLedger_rejectsInvalidRecords(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{
			name: "empty symbol",
			in:   `{"symbol":"  ","quantity":10,"buyPrice":150,"currency":"INR","buyDate":"2025-01-10"}`,
		},
		{
			name: "negative quantity",
			in:   `{"symbol":"AAPL","quantity":-3,"buyPrice":150,"currency":"INR","buyDate":"2025-01-10"}`,
		},
		{
			name: "zero price",
			in:   `{"symbol":"AAPL","quantity":10,"buyPrice":0,"currency":"INR","buyDate":"2025-01-10"}`,
		},
		{
			name: "negative price",
			in:   `{"symbol":"AAPL","quantity":10,"buyPrice":-150,"currency":"INR","buyDate":"2025-01-10"}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeLedger(strings.NewReader(tc.in))
			if err == nil {
				t.Fatal("DecodeLedger() accepted an invalid lot record")
			}
			if !strings.Contains(err.Error(), "line 1") {
				t.Errorf("error %q does not name the offending line", err)
			}
		})
	}
}

func TestDecodeLedger_exactDecimal(t *testing.T) {
	in := `{"symbol":"AAPL","quantity":3,"buyPrice":0.1,"currency":"INR","buyDate":"2025-01-10"}`
	ledger, err := DecodeLedger(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	for _, lot := range ledger.Lots() {
		// 3 * 0.1 is exactly 0.3 in decimal arithmetic.
		if want := M(0.3, "INR"); !lot.Invested().Equal(want) {
			t.Errorf("invested = %s, want exactly %s", lot.Invested(), want)
		}
	}
}
