package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

const fallback = "1 USD = ₹83.50 (Offline Mode)"

func newClient(url string) *Client {
	return &Client{
		Endpoint:  url,
		Path:      "$.rates.INR",
		EURFactor: 0.92,
		Fallback:  fallback,
		Log:       zerolog.Nop(),
	}
}

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("from") != "USD" || r.URL.Query().Get("to") != "INR" {
			t.Errorf("query = %v", r.URL.RawQuery)
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestTicker(t *testing.T) {
	srv := serve(t, http.StatusOK, `{"amount":1.0,"base":"USD","date":"2025-04-01","rates":{"INR":85.5}}`)
	c := newClient(srv.URL + "/latest?from=USD&to=INR")
	if got, want := c.Ticker(context.Background()), "1 USD = ₹85.5 | 1 EUR = ₹78.66"; got != want {
		t.Errorf("Ticker() = %q, want %q", got, want)
	}
}

func TestFetch(t *testing.T) {
	srv := serve(t, http.StatusOK, `{"rates":{"INR":83}}`)
	q, err := newClient(srv.URL + "/latest?from=USD&to=INR").Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if q.USD != 83 || q.EUR != 83*0.92 {
		t.Errorf("Fetch() = %+v", q)
	}
}

func TestTickerFallback(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"rates":{"INR":85.5}}`},
		{"malformed", http.StatusOK, `{"rates":`},
		{"missing field", http.StatusOK, `{"rates":{"EUR":0.9}}`},
		{"not a number", http.StatusOK, `{"rates":{"INR":"85.5"}}`},
	}
	for _, tc := range tests {
		srv := serve(t, tc.status, tc.body)
		c := newClient(srv.URL + "/latest?from=USD&to=INR")
		if got := c.Ticker(context.Background()); got != fallback {
			t.Errorf("%s: Ticker() = %q, want fallback", tc.name, got)
		}
	}
}

func TestTickerNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	if got := newClient(url).Ticker(context.Background()); got != fallback {
		t.Errorf("Ticker() = %q, want fallback", got)
	}
}
