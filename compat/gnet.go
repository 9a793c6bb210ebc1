package compat

import (
	"fmt"
	"os"

	"github.com/panjf2000/gnet/v2/pkg/logging"

	"github.com/lixenwraith/sectlog"
	"github.com/lixenwraith/sectlog/formatter"
)

// GnetAdapter wraps a sectlog.Sink to implement gnet logging.Logger interface
type GnetAdapter struct {
	sink         sectlog.Sink
	prefix       string
	fatalHandler func(msg string) // Customizable fatal behavior
}

var _ logging.Logger = (*GnetAdapter)(nil)

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(sink sectlog.Sink, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		sink:   sink,
		prefix: "gnet: ",
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// WithGnetPrefix sets the text written before every gnet message, empty for none
func WithGnetPrefix(prefix string) GnetOption {
	return func(a *GnetAdapter) {
		a.prefix = prefix
	}
}

// Debugf logs as info, sectlog has no debug severity
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.emit(sectlog.SeverityInfo, fmt.Sprintf(format, args...))
}

// Infof logs at info severity with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.emit(sectlog.SeverityInfo, fmt.Sprintf(format, args...))
}

// Warnf logs at warning severity with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.emit(sectlog.SeverityWarn, fmt.Sprintf(format, args...))
}

// Errorf logs at error severity with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.emit(sectlog.SeverityError, fmt.Sprintf(format, args...))
}

// Fatalf logs at error severity and triggers fatal handler
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.emit(sectlog.SeverityError, "fatal: "+msg)

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}

func (a *GnetAdapter) emit(sev sectlog.Severity, msg string) {
	a.sink.Emit(sev, formatter.Truncate(a.prefix+msg, formatter.MaxMessageSize), "")
}
