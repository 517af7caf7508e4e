package alphavantage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const intradayPayload = `{
  "Meta Data": {
    "1. Information": "Intraday (15min) open, high, low, close prices and volume",
    "2. Symbol": "AAPL"
  },
  "Time Series (15min)": {
    "2026-08-28 15:45:00": {"1. open": "232.10", "2. high": "232.80", "3. low": "231.90", "4. close": "232.50", "5. volume": "120000"},
    "2026-08-28 09:30:00": {"1. open": "230.00", "2. high": "231.00", "3. low": "229.50", "4. close": "230.75", "5. volume": "540000"},
    "2026-08-27 15:45:00": {"1. open": "228.00", "2. high": "228.90", "3. low": "227.60", "4. close": "228.40", "5. volume": "98000"}
  }
}`

func intradayServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("function"); got != "TIME_SERIES_INTRADAY" {
			t.Errorf("function = %s", got)
		}
		if got := q.Get("symbol"); got != "AAPL" {
			t.Errorf("symbol = %s", got)
		}
		if got := q.Get("interval"); got != "15min" {
			t.Errorf("interval = %s want the 15min default", got)
		}
		w.Write([]byte(intradayPayload))
	}))
}

func TestIntraday(t *testing.T) {
	server := intradayServer(t)
	defer server.Close()

	client := NewWithClient("test-key", server.URL, server.Client())
	candles, err := client.Intraday(context.Background(), "AAPL")
	if err != nil {
		t.Fatal(err)
	}
	if len(candles) != 3 {
		t.Fatalf("got %d candles want 3", len(candles))
	}
	for i := 1; i < len(candles); i++ {
		if !candles[i-1].Time.Before(candles[i].Time) {
			t.Error("candles are not sorted ascending")
		}
	}

	first := candles[0]
	if first.Open != 228.00 || first.Close != 228.40 || first.Volume != 98000 {
		t.Errorf("first candle = %+v", first)
	}
	// Timestamps are quoted in US Eastern time.
	if zone, _ := first.Time.Zone(); zone != "EDT" && zone != "EST" {
		t.Errorf("zone = %s want US Eastern", zone)
	}
	if first.Time.Hour() != 15 || first.Time.Minute() != 45 {
		t.Errorf("time = %s", first.Time)
	}
}

func TestMostRecentTradingDay(t *testing.T) {
	server := intradayServer(t)
	defer server.Close()

	client := NewWithClient("test-key", server.URL, server.Client())
	candles, err := client.MostRecentTradingDay(context.Background(), "AAPL")
	if err != nil {
		t.Fatal(err)
	}
	// Only the two Aug 28 candles survive; Aug 27 is an earlier session.
	if len(candles) != 2 {
		t.Fatalf("got %d candles want 2", len(candles))
	}
	for _, c := range candles {
		if c.Time.Day() != 28 || c.Time.Month() != time.August {
			t.Errorf("candle from the wrong day: %s", c.Time)
		}
	}
}

func TestFetchErrorPayloads(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"bad symbol", `{"Error Message": "Invalid API call."}`},
		{"rate limited", `{"Note": "Thank you for using Alpha Vantage! 25 requests per day."}`},
		{"no series", `{"Meta Data": {}}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.payload))
			}))
			defer server.Close()

			client := NewWithClient("test-key", server.URL, server.Client())
			if _, err := client.Intraday(context.Background(), "AAPL"); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestFetchRequestParameters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("interval"); got != "5min" {
			t.Errorf("interval = %s", got)
		}
		if got := q.Get("outputsize"); got != "full" {
			t.Errorf("outputsize = %s", got)
		}
		if got := q.Get("extended_hours"); got != "true" {
			t.Errorf("extended_hours = %s", got)
		}
		if got := q.Get("month"); got != "2026-07" {
			t.Errorf("month = %s", got)
		}
		w.Write([]byte(`{"Time Series (5min)": {}}`))
	}))
	defer server.Close()

	client := NewWithClient("test-key", server.URL, server.Client())
	candles, err := client.Fetch(context.Background(), IntradayRequest{
		Symbol:        "AAPL",
		Interval:      Interval5Min,
		Full:          true,
		ExtendedHours: true,
		Month:         "2026-07",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(candles) != 0 {
		t.Errorf("got %d candles want 0", len(candles))
	}
}
