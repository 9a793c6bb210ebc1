// FILE: lixenwraith/sectlog/default.go
package sectlog

import (
	"os"
	"sync/atomic"
)

// Global sink for package-level functions
var defaultSink atomic.Value // stores sinkRef

func init() {
	defaultSink.Store(sinkRef{s: NewWriterSink(os.Stdout, os.Stderr, os.Stderr)})
}

// Default returns the package-level sink
func Default() Sink {
	return defaultSink.Load().(sinkRef).s
}

// SetDefault replaces the package-level sink and returns the previous one.
// A nil sink installs Discard.
func SetDefault(s Sink) Sink {
	if isNilSink(s) {
		s = Discard
	}
	return defaultSink.Swap(sinkRef{s: s}).(sinkRef).s
}

// Default package-level functions that bind streams to the default sink

// Info returns an informational stream on the default sink
func Info(opts ...StreamOption) *Stream {
	return newStream(Default(), SeverityInfo, opts...)
}

// Log returns an untagged stream on the default sink
func Log(opts ...StreamOption) *Stream {
	return newStream(Default(), SeverityLog, opts...)
}

// Warn returns a warning stream on the default sink
func Warn(opts ...StreamOption) *Stream {
	return newStream(Default(), SeverityWarn, opts...)
}

// Error returns an error stream on the default sink
func Error(opts ...StreamOption) *Stream {
	return newStream(Default(), SeverityError, opts...)
}

// Section returns a stream on the default sink with section id open
func Section(sev Severity, id string, opts ...StreamOption) *Stream {
	return newStream(Default(), sev, append([]StreamOption{WithSection(id)}, opts...)...)
}
