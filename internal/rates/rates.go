// Package rates fetches the USD→INR rate for the ticker.
//
// There is one request per call, no retry and no cache. Any failure turns
// into the configured offline line; the cause only goes to the log.
package rates

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
	"github.com/rs/zerolog"
)

// Quote is one fetched rate.
type Quote struct {
	USD float64 // rupees per dollar
	EUR float64 // rupees per euro, approximated from USD
}

// Client queries one endpoint.
type Client struct {
	HTTP      *http.Client
	Endpoint  string
	Path      string  // JSONPath of the rate in the response
	EURFactor float64 // EUR is USD*EURFactor, not a real quote
	Fallback  string
	Log       zerolog.Logger
}

// jwget performs an HTTP GET request and unmarshals the JSON response into data.
func jwget(ctx context.Context, client *http.Client, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}

// Fetch retrieves the current rate.
func (c *Client) Fetch(ctx context.Context) (Quote, error) {
	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	var jobj any
	if err := jwget(ctx, client, c.Endpoint, &jobj); err != nil {
		return Quote{}, fmt.Errorf("error in wget %q: %w", "USD/INR", err)
	}
	jval, err := jsonpath.Get(c.Path, jobj)
	if err != nil {
		return Quote{}, fmt.Errorf("error parsing %q: %q %w", "USD/INR", c.Path, err)
	}
	// jsonpath may answer a list of one
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	usd, ok := jval.(float64)
	if !ok || math.IsNaN(usd) || usd <= 0 {
		return Quote{}, fmt.Errorf("error parsing %q: %q %s %v", "USD/INR", c.Path, "not a positive number", jval)
	}
	return Quote{USD: usd, EUR: usd * c.EURFactor}, nil
}

// Line formats q for the ticker.
func (q Quote) Line() string {
	return fmt.Sprintf("1 USD = ₹%s | 1 EUR = ₹%.2f", strconv.FormatFloat(q.USD, 'f', -1, 64), q.EUR)
}

// Ticker fetches once and returns the line to show.
func (c *Client) Ticker(ctx context.Context) string {
	q, err := c.Fetch(ctx)
	if err != nil {
		c.Log.Warn().Err(err).Str("endpoint", c.Endpoint).Msg("rate fetch failed, showing offline rate")
		return c.Fallback
	}
	c.Log.Debug().Float64("usd", q.USD).Msg("rate fetched")
	return q.Line()
}
