package papertrading

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeLedger reads a stream of JSONL data, decodes each line into a Lot, and
// returns the ledger in file order. An empty stream decodes to an empty
// ledger, not a nil one.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var lot Lot
		if err := json.Unmarshal(lineBytes, &lot); err != nil {
			return nil, fmt.Errorf("could not decode lot on line %d %q: %w", line, string(lineBytes), err)
		}
		ledger.Append(lot)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	return ledger, nil
}

// EncodeLot marshals a single lot to JSON and writes it to the writer,
// followed by a newline, in JSONL format.
func EncodeLot(w io.Writer, lot Lot) error {
	data, err := json.Marshal(lot)
	if err != nil {
		return fmt.Errorf("failed to marshal lot: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write lot: %w", err)
	}
	return nil
}

// EncodeLedger persists the whole ledger to an io.Writer in JSONL format, one
// canonical JSON object per lot, in buy order. The empty ledger encodes as an
// empty stream so that load(save(L)) == L holds for it too.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	for _, lot := range ledger.lots {
		if err := EncodeLot(w, lot); err != nil {
			return err
		}
	}
	return nil
}
