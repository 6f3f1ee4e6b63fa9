package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ninad572/PaperTrading/date"
)

// chartJSON is a trimmed chart API response: two trading days, the second
// close is null (market holiday).
const chartJSON = `{
  "chart": {
    "result": [
      {
        "meta": {"symbol": "INFY.NS", "currency": "INR"},
        "timestamp": [1704067200, 1704153600, 1704240000],
        "indicators": {"quote": [{"close": [1500.5, null, 1512.25]}]}
      }
    ],
    "error": null
  }
}`

const chartErrorJSON = `{
  "chart": {
    "result": null,
    "error": {"code": "Not Found", "description": "No data found, symbol may be delisted"}
  }
}`

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	// Bypass the disk cache in tests.
	return &Client{BaseURL: srv.URL, client: srv.Client()}
}

func TestClient_LatestPrice(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/v8/finance/chart/INFY.NS") {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, chartJSON)
	})

	price, err := client.LatestPrice(context.Background(), "INFY.NS")
	if err != nil {
		t.Fatalf("LatestPrice() error = %v", err)
	}
	// The most recent non-null close wins.
	if got := price.Decimal().String(); got != "1512.25" {
		t.Errorf("LatestPrice() = %s, want 1512.25", got)
	}
}

func TestClient_LatestPrice_symbolError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chartErrorJSON)
	})

	_, err := client.LatestPrice(context.Background(), "NOSUCH")
	if err == nil {
		t.Fatal("LatestPrice() accepted an in-band chart error")
	}
	if !strings.Contains(err.Error(), "No data found") {
		t.Errorf("error %q does not carry the chart error description", err)
	}
}

func TestClient_LatestPrice_httpFailure(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	if _, err := client.LatestPrice(context.Background(), "INFY.NS"); err == nil {
		t.Fatal("LatestPrice() accepted a failing HTTP response")
	}
}

func TestClient_History(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("range"); got != "6mo" {
			t.Errorf("range = %q, want 6mo", got)
		}
		if got := r.URL.Query().Get("interval"); got != "1d" {
			t.Errorf("interval = %q, want 1d", got)
		}
		fmt.Fprint(w, chartJSON)
	})

	samples, err := client.History(context.Background(), "INFY.NS", "6mo", "1d")
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	// The null close is skipped.
	if len(samples) != 2 {
		t.Fatalf("got %d samples, want 2", len(samples))
	}
	if want := date.MustParse("2024-01-01"); samples[0].Date != want {
		t.Errorf("first sample date = %v, want %v", samples[0].Date, want)
	}
	if got := samples[0].Close.Decimal().String(); got != "1500.5" {
		t.Errorf("first close = %s, want 1500.5", got)
	}
	if want := date.MustParse("2024-01-03"); samples[1].Date != want {
		t.Errorf("second sample date = %v, want %v", samples[1].Date, want)
	}
}

func TestClient_contextCancellation(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := client.LatestPrice(ctx, "INFY.NS"); err == nil {
		t.Fatal("LatestPrice() ignored a cancelled context")
	}
}
