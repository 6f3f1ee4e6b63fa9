// Package yahoo implements a PriceOracle on the Yahoo Finance chart API.
package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	papertrading "github.com/Ninad572/PaperTrading"
	"github.com/Ninad572/PaperTrading/date"
	"github.com/PaesslerAG/jsonpath"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// Client queries the Yahoo Finance chart endpoint for prices.
//
// Responses are cached on disk with a daily expiry, so repeated aggregations
// within a session do not hammer the API.
type Client struct {
	// BaseURL points to the chart API host. Overridable for tests.
	BaseURL string

	client *http.Client
}

// New returns a client with a daily-expiring disk cache.
func New() *Client {
	return &Client{BaseURL: defaultBaseURL, client: cached()}
}

// chart fetches the chart JSON for a symbol over the given period and interval
// and returns the parsed document.
func (c *Client) chart(ctx context.Context, symbol, period, interval string) (any, error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=%s",
		c.BaseURL, url.PathEscape(symbol), url.QueryEscape(period), url.QueryEscape(interval))

	var jobj any
	if err := jwget(ctx, c.client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("error fetching chart for %q: %w", symbol, err)
	}

	// The API reports symbol-level failures in-band.
	if jerr, err := jsonpath.Get("$.chart.error.description", jobj); err == nil {
		if desc, ok := jerr.(string); ok && desc != "" {
			return nil, fmt.Errorf("chart error for %q: %s", symbol, desc)
		}
	}
	return jobj, nil
}

// closes extracts the (timestamp, close) series from a chart document.
// Null closes (holidays, halted sessions) are skipped.
func closes(jobj any) ([]papertrading.Sample, error) {
	jts, err := jsonpath.Get("$.chart.result[0].timestamp", jobj)
	if err != nil {
		return nil, fmt.Errorf("no timestamps in chart: %w", err)
	}
	jcl, err := jsonpath.Get("$.chart.result[0].indicators.quote[0].close", jobj)
	if err != nil {
		return nil, fmt.Errorf("no closes in chart: %w", err)
	}

	timestamps, ok := jts.([]any)
	if !ok {
		return nil, fmt.Errorf("timestamps are not a list: %v", jts)
	}
	values, ok := jcl.([]any)
	if !ok {
		return nil, fmt.Errorf("closes are not a list: %v", jcl)
	}
	if len(timestamps) != len(values) {
		return nil, fmt.Errorf("chart has %d timestamps but %d closes", len(timestamps), len(values))
	}

	samples := make([]papertrading.Sample, 0, len(values))
	for i, jval := range values {
		val, ok := jval.(float64)
		if !ok {
			continue
		}
		ts, ok := timestamps[i].(float64)
		if !ok {
			continue
		}
		samples = append(samples, papertrading.Sample{
			Date:  date.FromTime(time.Unix(int64(ts), 0).UTC()),
			Close: papertrading.M(val, ""),
		})
	}
	return samples, nil
}

// LatestPrice returns the most recent close for symbol, derived from the last
// sample of a one-day window.
func (c *Client) LatestPrice(ctx context.Context, symbol string) (papertrading.Money, error) {
	jobj, err := c.chart(ctx, symbol, "1d", "1d")
	if err != nil {
		return papertrading.Money{}, err
	}
	samples, err := closes(jobj)
	if err != nil {
		return papertrading.Money{}, fmt.Errorf("error parsing chart for %q: %w", symbol, err)
	}
	if len(samples) == 0 {
		return papertrading.Money{}, fmt.Errorf("no price data for %q", symbol)
	}
	return samples[len(samples)-1].Close, nil
}

// History returns the daily close series for symbol over the given period
// (e.g. "6mo") and interval (e.g. "1d").
func (c *Client) History(ctx context.Context, symbol, period, interval string) ([]papertrading.Sample, error) {
	jobj, err := c.chart(ctx, symbol, period, interval)
	if err != nil {
		return nil, err
	}
	samples, err := closes(jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing chart for %q: %w", symbol, err)
	}
	return samples, nil
}

var _ papertrading.PriceOracle = (*Client)(nil)
