// Package httpsink delivers sectlog lines to an HTTP collector, one synchronous POST per line.
package httpsink

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/lixenwraith/sectlog"
)

// Request headers carrying line metadata
const (
	HeaderSeverity      = "X-Log-Severity"
	HeaderCorrelationID = "X-Correlation-ID"
)

// DefaultTimeout bounds a single delivery
const DefaultTimeout = 5 * time.Second

// Sink posts every emitted line to a collector URL.
// Delivery failures are counted and passed to the error handler, never returned.
type Sink struct {
	client   *fasthttp.Client
	url      string
	timeout  time.Duration
	onError  func(error)
	sent     atomic.Uint64
	failures atomic.Uint64
}

var _ sectlog.Sink = (*Sink)(nil)

// Option configures a Sink
type Option func(*Sink)

// WithClient replaces the default fasthttp client
func WithClient(c *fasthttp.Client) Option {
	return func(s *Sink) {
		if c != nil {
			s.client = c
		}
	}
}

// WithTimeout bounds each delivery
func WithTimeout(d time.Duration) Option {
	return func(s *Sink) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithErrorHandler receives every delivery failure
func WithErrorHandler(fn func(error)) Option {
	return func(s *Sink) {
		s.onError = fn
	}
}

// New creates a sink posting to url, which must be an absolute http or https URL
func New(url string, opts ...Option) (*Sink, error) {
	uri := fasthttp.AcquireURI()
	defer fasthttp.ReleaseURI(uri)
	if err := uri.Parse(nil, []byte(url)); err != nil {
		return nil, fmt.Errorf("httpsink: invalid url '%s': %w", url, err)
	}
	if scheme := string(uri.Scheme()); scheme != "http" && scheme != "https" {
		return nil, fmt.Errorf("httpsink: unsupported scheme '%s' in url '%s'", scheme, url)
	}
	if len(uri.Host()) == 0 {
		return nil, fmt.Errorf("httpsink: missing host in url '%s'", url)
	}

	s := &Sink{
		client:  &fasthttp.Client{Name: "sectlog-httpsink"},
		url:     url,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Emit posts the tagged line. The severity name and correlation id travel as headers.
func (s *Sink) Emit(sev sectlog.Severity, msg string, id string) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(s.url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("text/plain; charset=utf-8")
	req.Header.Set(HeaderSeverity, sev.String())
	if id != "" {
		req.Header.Set(HeaderCorrelationID, id)
	}
	req.SetBodyString(sev.Tag() + msg + "\n")

	err := s.client.DoTimeout(req, resp, s.timeout)
	if err == nil && resp.StatusCode() >= fasthttp.StatusMultipleChoices {
		err = fmt.Errorf("httpsink: collector returned status %d", resp.StatusCode())
	}
	if err != nil {
		s.failures.Add(1)
		if s.onError != nil {
			s.onError(err)
		}
		return
	}
	s.sent.Add(1)
}

// Sent returns the number of delivered lines
func (s *Sink) Sent() uint64 {
	return s.sent.Load()
}

// Failures returns the number of lines that could not be delivered
func (s *Sink) Failures() uint64 {
	return s.failures.Load()
}
