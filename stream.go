// FILE: lixenwraith/sectlog/stream.go
package sectlog

import (
	"fmt"
	"strconv"

	"github.com/lixenwraith/sectlog/formatter"
)

// Stream accumulates text for one call site and hands it to its sink at end of life.
// A stream is owned by a single goroutine and is not safe for concurrent use.
//
// The buffer reaches the sink through Flush or Close. Close while a section is open
// appends a forced SectionEnd marker and discards the buffer without emitting it.
type Stream struct {
	emit    func(msg, id string)
	sink    Sink
	buf     []byte
	section string
	id      string
	closed  bool
}

// StreamOption configures a stream at construction
type StreamOption func(*Stream)

// WithSection opens a section named id
func WithSection(id string) StreamOption {
	return func(s *Stream) {
		s.section = id
	}
}

// WithSectionIndex opens a section named id followed by the decimal index n
func WithSectionIndex(id string, n uint) StreamOption {
	return func(s *Stream) {
		s.section = sectionName(id, n)
	}
}

// WithID sets the correlation id passed with every emit
func WithID(id string) StreamOption {
	return func(s *Stream) {
		s.id = id
	}
}

// NewStream binds a stream to sink at sev
func NewStream(sink Sink, sev Severity, opts ...StreamOption) (*Stream, error) {
	if isNilSink(sink) {
		return nil, fmtErrorf("stream requires a non-nil sink")
	}
	if !sev.valid() {
		return nil, fmtErrorf("invalid severity: %s", sev)
	}
	return newStream(sink, sev, opts...), nil
}

func newStream(sink Sink, sev Severity, opts ...StreamOption) *Stream {
	s := &Stream{
		sink: sink,
		emit: func(msg, id string) { sink.Emit(sev, msg, id) },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Scope runs fn with a new stream and closes the stream when fn returns, also on panic
func Scope(sink Sink, sev Severity, fn func(*Stream), opts ...StreamOption) error {
	s, err := NewStream(sink, sev, opts...)
	if err != nil {
		return err
	}
	defer s.Close()
	fn(s)
	return nil
}

// compose runs fn over the buffer; a panic inside fn restores the prior buffer
func (s *Stream) compose(fn func(buf []byte) []byte) (out *Stream) {
	out = s
	if s == nil || s.closed {
		return
	}
	prev := s.buf
	defer func() {
		if r := recover(); r != nil {
			s.buf = prev
		}
	}()
	s.buf = fn(s.buf)
	return
}

// Append writes the raw text form of each value, no formatting is applied
func (s *Stream) Append(values ...any) *Stream {
	return s.compose(func(buf []byte) []byte {
		for _, v := range values {
			buf = formatter.AppendValue(buf, v)
		}
		return buf
	})
}

// Write implements io.Writer, appending p verbatim
func (s *Stream) Write(p []byte) (int, error) {
	if s == nil || s.closed {
		return 0, fmtErrorf("write on closed stream")
	}
	s.buf = append(s.buf, p...)
	return len(p), nil
}

// Call records id as the correlation id and appends the rendered message.
// "%t" in format renders as "%f"; output is capped at 1024 bytes.
func (s *Stream) Call(id string, format string, args ...any) *Stream {
	if s != nil && !s.closed {
		s.id = id
	}
	return s.compose(func(buf []byte) []byte {
		return append(buf, formatter.Render(format, args...)...)
	})
}

// Printf appends the rendered message without changing the correlation id
func (s *Stream) Printf(format string, args ...any) *Stream {
	return s.compose(func(buf []byte) []byte {
		return append(buf, formatter.Render(format, args...)...)
	})
}

// SectionBegin appends the begin marker for the open section and the rendered message
func (s *Stream) SectionBegin(format string, args ...any) *Stream {
	return s.compose(func(buf []byte) []byte {
		buf = appendMarker(buf, markerSectionBegin, s.section)
		return append(buf, formatter.Render(format, args...)...)
	})
}

// SectionEnd appends the end marker and the rendered message, then closes the section
func (s *Stream) SectionEnd(format string, args ...any) *Stream {
	out := s.compose(func(buf []byte) []byte {
		buf = appendMarker(buf, markerSectionEnd, s.section)
		return append(buf, formatter.Render(format, args...)...)
	})
	if s != nil && !s.closed {
		s.section = ""
	}
	return out
}

// SectionCheck reports an error through the sink when the open section is not expected,
// it is a no-op once the stream is closed
func (s *Stream) SectionCheck(expected string) {
	if s == nil || s.closed || s.section == expected {
		return
	}
	s.sink.Emit(SeverityError, fmt.Sprintf("expected end of section '%s' instead of '%s'", s.section, expected), s.id)
}

// SectionCheckIndex is SectionCheck for an indexed section name
func (s *Stream) SectionCheckIndex(expected string, n uint) {
	s.SectionCheck(sectionName(expected, n))
}

// SectionID returns the open section, empty when no section is open
func (s *Stream) SectionID() string {
	return s.section
}

// ID returns the correlation id
func (s *Stream) ID() string {
	return s.id
}

// String returns the buffered text
func (s *Stream) String() string {
	return string(s.buf)
}

// Flush sends the buffer to the sink and clears it. Flushing an empty buffer emits an
// empty message. No-op after Close.
func (s *Stream) Flush() {
	if s == nil || s.closed {
		return
	}
	s.emit(string(s.buf), s.id)
	s.buf = s.buf[:0]
}

// Close ends the stream. With no open section the buffer is emitted once and cleared.
// With an open section a forced SectionEnd marker is appended and nothing is emitted.
// Later calls are no-ops.
func (s *Stream) Close() {
	if s == nil || s.closed {
		return
	}
	s.closed = true

	if s.section != "" {
		s.buf = appendMarker(s.buf, markerSectionEnd, s.section)
		return
	}
	s.emit(string(s.buf), s.id)
	s.buf = s.buf[:0]
}

func appendMarker(buf []byte, marker, section string) []byte {
	buf = append(buf, marker...)
	buf = append(buf, section...)
	return append(buf, ' ')
}

func sectionName(id string, n uint) string {
	return id + strconv.FormatUint(uint64(n), 10)
}
