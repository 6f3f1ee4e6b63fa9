// Package renderer turns engine results into markdown for terminal display.
//
// The renderer only formats; all amounts arrive already computed by the
// engine.
package renderer

import (
	"bytes"
	"fmt"

	papertrading "github.com/Ninad572/PaperTrading"
	md "github.com/nao1215/markdown"
)

// Portfolio renders the positions table and the portfolio-wide totals.
func Portfolio(positions []papertrading.Position, summary papertrading.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Your Portfolio")

	if len(positions) == 0 {
		doc.PlainText("The portfolio is empty.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Stock", "Quantity", "Total Invested", "Current Value", "Profit/Loss"},
		Rows:   [][]string{},
	}
	for _, pos := range positions {
		profitLoss := pos.ProfitLoss.SignedString()
		if !pos.Priced {
			profitLoss = "no price"
		}
		table.Rows = append(table.Rows, []string{
			pos.Symbol,
			fmt.Sprintf("%d", pos.Quantity),
			pos.Invested.String(),
			pos.CurrentValue.String(),
			profitLoss,
		})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("**Total Invested:** %s", summary.Invested))
	doc.PlainText(fmt.Sprintf("**Total Profit/Loss:** %s", summary.ProfitLoss.SignedString()))

	return doc.String()
}

// Lots renders the raw lot list, the audit view of every buy still on record.
func Lots(ledger *papertrading.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Lots")

	if ledger.Len() == 0 {
		doc.PlainText("The ledger is empty.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"#", "Stock", "Quantity", "Buy Price", "Buy Date"},
		Rows:   [][]string{},
	}
	for i, lot := range ledger.Lots() {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", i+1),
			lot.Symbol,
			fmt.Sprintf("%d", lot.Quantity),
			lot.BuyPrice.String(),
			lot.BuyDate.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// History renders the close-price series of a symbol.
func History(symbol string, samples []papertrading.Sample) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("History for %s", symbol))

	if len(samples) == 0 {
		doc.PlainText("No price data.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Close"},
		Rows:   [][]string{},
	}
	for _, sample := range samples {
		table.Rows = append(table.Rows, []string{
			sample.Date.String(),
			sample.Close.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// Price renders the latest price of a symbol.
func Price(symbol string, price papertrading.Money) string {
	return fmt.Sprintf("## Latest Price of %s: %s\n", symbol, price)
}
