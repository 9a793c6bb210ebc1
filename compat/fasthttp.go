// FILE: lixenwraith/sectlog/compat/fasthttp.go
package compat

import (
	"fmt"
	"strings"

	"github.com/valyala/fasthttp"

	"github.com/lixenwraith/sectlog"
	"github.com/lixenwraith/sectlog/formatter"
)

// FastHTTPAdapter wraps a sectlog.Sink to implement fasthttp Logger interface
type FastHTTPAdapter struct {
	sink             sectlog.Sink
	prefix           string
	defaultSeverity  sectlog.Severity
	severityDetector func(string) (sectlog.Severity, bool) // Detects severity from message content
}

var _ fasthttp.Logger = (*FastHTTPAdapter)(nil)

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(sink sectlog.Sink, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		sink:             sink,
		prefix:           "fasthttp: ",
		defaultSeverity:  sectlog.SeverityInfo,
		severityDetector: DetectSeverity, // Default severity detection
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultSeverity sets the severity for messages the detector does not classify
func WithDefaultSeverity(sev sectlog.Severity) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultSeverity = sev
	}
}

// WithSeverityDetector sets a custom function to detect severity from message content
func WithSeverityDetector(detector func(string) (sectlog.Severity, bool)) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.severityDetector = detector
	}
}

// WithFastHTTPPrefix sets the text written before every fasthttp message, empty for none
func WithFastHTTPPrefix(prefix string) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.prefix = prefix
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	sev := a.defaultSeverity
	if a.severityDetector != nil {
		if detected, ok := a.severityDetector(msg); ok {
			sev = detected
		}
	}

	a.sink.Emit(sev, formatter.Truncate(a.prefix+msg, formatter.MaxMessageSize), "")
}

// DetectSeverity classifies a message by keywords, reporting false when none match
func DetectSeverity(msg string) (sectlog.Severity, bool) {
	msgLower := strings.ToLower(msg)

	// Check for error indicators
	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return sectlog.SeverityError, true
	}

	// Check for warning indicators
	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "deprecated") {
		return sectlog.SeverityWarn, true
	}

	// Debug chatter goes untagged
	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return sectlog.SeverityLog, true
	}

	return sectlog.SeverityInfo, false
}
