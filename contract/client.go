package contract

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/alessio/shellescape"
)

// Config holds the settings for the HTTP connection shared by all test cases.
type Config struct {
	// BaseURL is the URL that every Endpoint path is appended to, such as "https://dog.ceo/api".
	BaseURL string

	// Timeout is the time limit for an entire request, including reading the body.
	Timeout time.Duration

	MaxIdleConns          int
	IdleConnTimeout       time.Duration
	DialTimeout           time.Duration
	TLSHandshakeTimeout   time.Duration
	ResponseHeaderTimeout time.Duration
}

// DefaultConfig returns a Config with reasonable defaults for the given base URL.
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL:               baseURL,
		Timeout:               30 * time.Second,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		DialTimeout:           10 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
	}
}

// Client is the connection handle that test cases share. It is acquired once before any
// test runs and released with Close after all of them have finished. It is safe for
// concurrent use.
type Client struct {
	baseURL   string
	http      *http.Client
	transport *http.Transport
	closed    bool
	lock      sync.Mutex
}

// Outcome is everything captured from a single request.
type Outcome struct {
	Endpoint   Endpoint
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
	Envelope   Envelope
	Elapsed    time.Duration
}

// NewClient creates a Client. It returns an error if the base URL is not an absolute http or
// https URL.
func NewClient(config Config) (*Client, error) {
	u, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("base URL must be an absolute http or https URL, got %q", config.BaseURL)
	}
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   config.DialTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          config.MaxIdleConns,
		MaxIdleConnsPerHost:   config.MaxIdleConns,
		IdleConnTimeout:       config.IdleConnTimeout,
		TLSHandshakeTimeout:   config.TLSHandshakeTimeout,
		ResponseHeaderTimeout: config.ResponseHeaderTimeout,
	}
	return &Client{
		baseURL:   strings.TrimSuffix(config.BaseURL, "/"),
		http:      &http.Client{Transport: transport, Timeout: config.Timeout},
		transport: transport,
	}, nil
}

// BaseURL returns the base URL with no trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// URL returns the full URL that a request for the Endpoint will use.
func (c *Client) URL(e Endpoint) string {
	return c.baseURL + e.Path()
}

// Close releases any pooled connections. Calling it more than once has no effect.
func (c *Client) Close() {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.transport.CloseIdleConnections()
}

func (c *Client) isClosed() bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.closed
}

// Run makes a single GET request for the Endpoint and decodes the response envelope. It does
// not check the status code or any other part of the contract.
//
// If no response could be obtained, the error is a *NetworkError. If a response was obtained
// but the body was not a valid envelope, the error is a *MalformedResponse, and the returned
// Outcome still contains the status code and raw body.
func (c *Client) Run(ctx context.Context, e Endpoint, logger Logger) (Outcome, error) {
	if logger == nil {
		logger = nullLogger{}
	}
	if c.isClosed() {
		return Outcome{}, ErrClientClosed
	}
	if err := e.Validate(); err != nil {
		return Outcome{}, err
	}
	outcome := Outcome{Endpoint: e, URL: c.URL(e)}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, outcome.URL, nil)
	if err != nil {
		return outcome, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	logger.Printf("Request: %s", curlCommand(req))

	startTime := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return outcome, &NetworkError{URL: outcome.URL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()
	outcome.StatusCode = resp.StatusCode
	outcome.Header = resp.Header

	body, err := io.ReadAll(resp.Body)
	outcome.Elapsed = time.Since(startTime)
	if err != nil {
		return outcome, &NetworkError{URL: outcome.URL, Err: fmt.Errorf("error reading response body: %w", err)}
	}
	outcome.Body = body
	logger.Printf("Response: HTTP %d after %s: %s", resp.StatusCode, outcome.Elapsed, truncate(string(body), 2000))

	env, err := DecodeEnvelope(body)
	if err != nil {
		return outcome, &MalformedResponse{URL: outcome.URL, StatusCode: resp.StatusCode, Body: body, Err: err}
	}
	outcome.Envelope = env
	return outcome, nil
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// curlCommand returns a shell command line that would repeat the request, for debug output.
func curlCommand(req *http.Request) string {
	var b commandBuilder
	b.add("curl", "-s", "-X", req.Method)
	for name, values := range req.Header {
		for _, v := range values {
			b.add("-H", name+": "+v)
		}
	}
	b.add(req.URL.String())
	return b.String()
}
