package cubecobra

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const DefaultBaseURL = "https://cubecobra.com"

// Export query strings as produced by the CubeCobra download menu.
const (
	csvQuery       = "primary=Color%20Category&secondary=Rarity&tertiary=Creature%2FNon-Creature&quaternary=Mana%20Value&showother=false"
	plaintextQuery = "primary=Color%20Category&secondary=Types-Multicolor&tertiary=Mana%20Value&quaternary=Alphabetical&showother=undefined"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	log        zerolog.Logger
}

func NewClient(httpClient *http.Client, baseURL, userAgent string, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 25 * time.Second}
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		log:        log,
	}
}

func (c *Client) CSVURL(cubeID string) string {
	return fmt.Sprintf("%s/cube/download/csv/%s?%s", c.baseURL, url.PathEscape(cubeID), csvQuery)
}

func (c *Client) PlaintextURL(cubeID string) string {
	return fmt.Sprintf("%s/cube/download/plaintext/%s?%s", c.baseURL, url.PathEscape(cubeID), plaintextQuery)
}

func (c *Client) FetchCSV(ctx context.Context, cubeID string) (string, error) {
	return c.Fetch(ctx, c.CSVURL(cubeID))
}

func (c *Client) FetchPlaintext(ctx context.Context, cubeID string) (string, error) {
	return c.Fetch(ctx, c.PlaintextURL(cubeID))
}

// Fetch performs a single GET and returns the whole body as text.
// Every failure is reported as a *TransportError.
func (c *Client) Fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &TransportError{URL: rawURL, Err: err}
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.log.Debug().Str("url", rawURL).Msg("fetching card list")
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return "", &TransportError{URL: rawURL, StatusCode: resp.StatusCode, Body: string(b)}
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{URL: rawURL, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	c.log.Debug().
		Str("url", rawURL).
		Int("status", resp.StatusCode).
		Int("bytes", len(b)).
		Dur("elapsed", time.Since(start)).
		Msg("fetched card list")
	return string(b), nil
}

type TransportError struct {
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("cubecobra status %d for %s: %s", e.StatusCode, e.URL, strings.TrimSpace(e.Body))
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
