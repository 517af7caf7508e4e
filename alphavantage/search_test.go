package alphavantage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const searchPayload = `{
  "bestMatches": [
    {"1. symbol": "AAPL", "2. name": "Apple Inc", "3. type": "Equity", "4. region": "United States", "9. matchScore": "0.9"},
    {"1. symbol": "APLE", "2. name": "Apple Hospitality REIT Inc", "3. type": "Equity", "4. region": "United States", "9. matchScore": "0.6"},
    {"1. symbol": "APC.FRK", "2. name": "Apple Inc - Frankfurt", "3. type": "Equity", "4. region": "Frankfurt", "9. matchScore": "0.5"}
  ]
}`

func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("function"); got != "SYMBOL_SEARCH" {
			t.Errorf("function = %s", got)
		}
		if got := q.Get("keywords"); got != "apple" {
			t.Errorf("keywords = %s", got)
		}
		w.Write([]byte(searchPayload))
	}))
	defer server.Close()

	client := NewWithClient("test-key", server.URL, server.Client())
	stocks, err := client.Search(context.Background(), "apple", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(stocks) != 3 {
		t.Fatalf("got %d stocks want 3", len(stocks))
	}
	if stocks[0].Symbol != "AAPL" || stocks[0].Name != "Apple Inc" {
		t.Errorf("first match = %+v", stocks[0])
	}
	if stocks[2].Symbol != "APC.FRK" {
		t.Errorf("third match = %+v", stocks[2])
	}
}

func TestSearchLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchPayload))
	}))
	defer server.Close()

	client := NewWithClient("test-key", server.URL, server.Client())
	stocks, err := client.Search(context.Background(), "apple", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(stocks) != 2 {
		t.Errorf("got %d stocks want 2", len(stocks))
	}
}

func TestSearchNoMatches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"bestMatches": []}`))
	}))
	defer server.Close()

	client := NewWithClient("test-key", server.URL, server.Client())
	stocks, err := client.Search(context.Background(), "zzzzz", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(stocks) != 0 {
		t.Errorf("got %d stocks want 0", len(stocks))
	}
}

func TestSearchRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Note": "API rate limit reached"}`))
	}))
	defer server.Close()

	client := NewWithClient("test-key", server.URL, server.Client())
	if _, err := client.Search(context.Background(), "apple", 10); err == nil {
		t.Fatal("expected an error")
	}
}
