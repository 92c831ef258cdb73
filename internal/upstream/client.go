// Package upstream provides a circuit-breaking HTTP client for the public
// web services genenet depends on (IntAct PSICQUIC, togows).
package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/persistorai/genenet/internal/metrics"
)

// Circuit breaker configuration.
const (
	cbFailureThreshold = 5
	cbCooldown         = 30 * time.Second
	cbHalfOpenProbes   = 1
)

// maxBodySize caps how much of an upstream response is read. Larger
// responses fail rather than being cut short.
const maxBodySize = 10 << 20 // 10 MB

// ErrCircuitOpen is returned when the breaker rejects a request without calling the service.
var ErrCircuitOpen = errors.New("upstream circuit breaker is open")

// StatusError reports a non-2xx response from an upstream service.
type StatusError struct {
	Service    string
	StatusCode int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Service, e.StatusCode)
}

// IsNotFound reports whether err is a 404 from an upstream service.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

// Client performs GET requests against one upstream service.
type Client struct {
	name string
	http *http.Client
	cb   *gobreaker.CircuitBreaker
	log  *logrus.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a Client for the named service with the given request timeout.
func New(name string, timeout time.Duration, log *logrus.Logger, opts ...Option) *Client {
	c := &Client{
		name: name,
		http: &http.Client{Timeout: timeout},
		log:  log,
	}
	for _, o := range opts {
		o(c)
	}

	c.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: cbHalfOpenProbes,
		Timeout:     cbCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cbFailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.WithFields(logrus.Fields{
				"service": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("upstream circuit breaker state changed")
		},
		// A 404 is an answer, not an outage.
		IsSuccessful: func(err error) bool {
			return err == nil || IsNotFound(err)
		},
	})

	return c
}

// Name returns the service name used in logs and metrics.
func (c *Client) Name() string { return c.name }

// Get fetches rawURL and returns the response body.
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, error) {
	out, err := c.cb.Execute(func() (any, error) {
		return c.doGet(ctx, rawURL)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.UpstreamRequests.WithLabelValues(c.name, "rejected").Inc()
			return nil, fmt.Errorf("%s: %w", c.name, ErrCircuitOpen)
		}

		metrics.UpstreamRequests.WithLabelValues(c.name, outcome(err)).Inc()

		return nil, err
	}

	metrics.UpstreamRequests.WithLabelValues(c.name, "ok").Inc()

	body, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected result type %T", c.name, out)
	}

	return body, nil
}

func (c *Client) doGet(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating %s request: %w", c.name, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", c.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain body so the connection can be reused.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20)) //nolint:errcheck // best-effort drain before close.
		return nil, &StatusError{Service: c.name, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", c.name, err)
	}

	if len(body) > maxBodySize {
		return nil, fmt.Errorf("%s response exceeds %d bytes", c.name, maxBodySize)
	}

	c.log.WithFields(logrus.Fields{
		"service": c.name,
		"url":     rawURL,
		"bytes":   len(body),
	}).Debug("upstream.get")

	return body, nil
}

func outcome(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		if se.StatusCode == http.StatusNotFound {
			return "not_found"
		}

		return "status_error"
	}

	return "transport_error"
}
