// FILE: lixenwraith/sectlog/sink.go
package sectlog

import (
	"io"
	"sync"
	"time"

	"github.com/lixenwraith/sectlog/sanitizer"
)

// StdSink routes log, warning and error lines to three independently bound channels.
// Info lines share the log channel. StdSink is safe for concurrent use.
type StdSink struct {
	mu        sync.Mutex
	opts      sinkOptions
	channels  [channelCount]*channel
	distinct  Distinctness
	clock     *titleClock
	console   *console
	sanitizer *sanitizer.Sanitizer // nil for passthrough
	diag      bool
	state     State
	buf       []byte
}

var _ Sink = (*StdSink)(nil)

// NewStdSink creates a sink with one target per channel.
// Channels resolve in log, warning, error order; a target naming the same file path or writer
// as an earlier channel shares that destination. A file that cannot be opened leaves its
// channel disabled without failing construction.
func NewStdSink(logT, warnT, errT Target, opts ...SinkOption) *StdSink {
	o := newSinkOptions(opts)
	diag := o.cfg.InternalErrorsToStderr
	channels := resolveChannels([channelCount]Target{logT, warnT, errT}, OpenMode(o.cfg.OpenMode), diag)
	return newStdSink(o, channels)
}

// NewWriterSink binds all three channels to caller-owned writers
func NewWriterSink(logW, warnW, errW io.Writer, opts ...SinkOption) *StdSink {
	return NewStdSink(ToWriter(logW), ToWriter(warnW), ToWriter(errW), opts...)
}

// NewFileSink binds the log channel to a file and the other channels to writers.
// mode wins over an open_mode carried by WithConfig.
func NewFileSink(logPath string, warnW, errW io.Writer, mode OpenMode, opts ...SinkOption) *StdSink {
	opts = append(append([]SinkOption{}, opts...), WithOpenMode(mode))
	return NewStdSink(ToFile(logPath), ToWriter(warnW), ToWriter(errW), opts...)
}

// NewFilesSink binds the log and warning channels to files and the error channel to a writer
func NewFilesSink(logPath, warnPath string, errW io.Writer, mode OpenMode, opts ...SinkOption) *StdSink {
	opts = append(append([]SinkOption{}, opts...), WithOpenMode(mode))
	return NewStdSink(ToFile(logPath), ToFile(warnPath), ToWriter(errW), opts...)
}

// NewAllFilesSink binds all three channels to files
func NewAllFilesSink(logPath, warnPath, errPath string, mode OpenMode, opts ...SinkOption) *StdSink {
	opts = append(append([]SinkOption{}, opts...), WithOpenMode(mode))
	return NewStdSink(ToFile(logPath), ToFile(warnPath), ToFile(errPath), opts...)
}

// NewSinkFromConfig validates cfg and creates a sink from its file channels
func NewSinkFromConfig(cfg *Config, opts ...SinkOption) (*StdSink, error) {
	if cfg == nil {
		return nil, fmtErrorf("configuration cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts = append([]SinkOption{WithConfig(cfg)}, opts...)
	return NewStdSink(ToFile(cfg.LogFile), ToFile(cfg.WarnFile), ToFile(cfg.ErrorFile), opts...), nil
}

// newStdSink finishes construction over resolved channels and runs the start hook
func newStdSink(o sinkOptions, channels [channelCount]*channel) *StdSink {
	s := &StdSink{
		opts:     o,
		channels: channels,
		distinct: distinctness(channels),
		clock:    newTitleClock(o.cfg.ShowInfo, o.cfg.TitleTemplate, o.now, o.cfg.InternalErrorsToStderr),
		console:  newConsole(o),
		diag:     o.cfg.InternalErrorsToStderr,
		buf:      make([]byte, 0, maxMessageSize+64),
	}
	if policy := sanitizer.PolicyPreset(o.cfg.Sanitization); policy != "" && policy != sanitizer.PolicyRaw {
		s.sanitizer = sanitizer.New().Policy(policy)
		if s.sanitizer.Passthrough() {
			s.sanitizer = nil
		}
	}
	s.state.StartTime.Store(time.Now())

	if o.lifecycle != nil {
		o.lifecycle.OnLogStart(s, s.distinct)
	}
	return s
}

// Emit renders the title, severity tag and msg as one line and writes it to the channel
// bound to sev, then echoes it to the console when enabled. Warning and error emissions
// increment their counter before the write. A disabled channel drops the line.
func (s *StdSink) Emit(sev Severity, msg string, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Closed.Load() {
		s.state.DroppedLines.Add(1)
		return
	}

	switch sev {
	case SeverityWarn:
		s.state.Warnings.Add(1)
	case SeverityError:
		s.state.Errors.Add(1)
	}

	if s.sanitizer != nil {
		msg = s.sanitizer.Sanitize(msg)
	}

	line := s.clock.appendTitle(s.buf[:0], id)
	line = append(line, sev.Tag()...)
	line = append(line, msg...)
	line = append(line, '\n')
	s.buf = line

	s.writeLocked(channelFor(sev), line)

	if s.console != nil {
		s.console.write(sev, line)
	}
}

// WriteChannel writes line verbatim, without title or tag, to the channel bound to sev.
// Used by lifecycle hooks to print banners; counters are not affected.
func (s *StdSink) WriteChannel(sev Severity, line string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Closed.Load() {
		return
	}
	buf := append(s.buf[:0], line...)
	buf = append(buf, '\n')
	s.buf = buf
	s.writeLocked(channelFor(sev), buf)
}

// writeLocked writes to one channel, assumes mu is held
func (s *StdSink) writeLocked(idx int, line []byte) {
	ch := s.channels[idx]
	if ch == nil {
		return
	}
	if err := ch.write(line); err != nil {
		s.state.DroppedLines.Add(1)
		internalLog(s.diag, "failed to write to %s channel '%s': %v\n", channelNames[idx], ch.name, err)
		return
	}
	s.state.TotalLines.Add(1)
}

// Warnings returns the number of warning emissions
func (s *StdSink) Warnings() uint64 {
	return s.state.Warnings.Load()
}

// Errors returns the number of error emissions
func (s *StdSink) Errors() uint64 {
	return s.state.Errors.Load()
}

// Lines returns the number of lines written to a channel
func (s *StdSink) Lines() uint64 {
	return s.state.TotalLines.Load()
}

// Dropped returns the number of lines lost to write failures or emitted after Close
func (s *StdSink) Dropped() uint64 {
	return s.state.DroppedLines.Load()
}

// Distinctness returns the channel distinctness computed at construction
func (s *StdSink) Distinctness() Distinctness {
	return s.distinct
}

// Enabled reports whether the channel bound to sev has a destination
func (s *StdSink) Enabled(sev Severity) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.channels[channelFor(sev)] != nil
}

// Uptime returns the time since the sink was constructed
func (s *StdSink) Uptime() time.Duration {
	return s.state.uptime()
}

// Clone returns a sink sharing this sink's channels. Files stay open until the last
// sharing sink is closed. The clone starts with zero counters and a fresh title clock,
// and runs the start hook. Cloning a closed sink yields a closed sink.
func (s *StdSink) Clone() *StdSink {
	s.mu.Lock()
	if s.state.Closed.Load() {
		s.mu.Unlock()
		c := &StdSink{opts: s.opts, distinct: s.distinct, diag: s.diag}
		c.state.ShutdownCalled.Store(true)
		c.state.Closed.Store(true)
		return c
	}
	var channels [channelCount]*channel
	for i, ch := range s.channels {
		channels[i] = ch.acquire()
	}
	o := s.opts
	s.mu.Unlock()

	return newStdSink(o, channels)
}

// Close runs the finish hook, then releases this sink's channel references.
// Files are closed when no other clone holds them. Safe to call multiple times.
func (s *StdSink) Close() error {
	if !s.state.ShutdownCalled.CompareAndSwap(false, true) {
		return nil
	}

	if s.opts.lifecycle != nil {
		s.opts.lifecycle.OnLogFinish(s, s.distinct)
	}

	s.mu.Lock()
	s.state.Closed.Store(true)
	channels := s.channels
	s.channels = [channelCount]*channel{}
	s.mu.Unlock()

	var finalErr error
	for _, ch := range channels {
		finalErr = combineErrors(finalErr, ch.release(s.diag))
	}
	return finalErr
}

// Stream returns a stream bound to this sink at sev
func (s *StdSink) Stream(sev Severity, opts ...StreamOption) *Stream {
	return newStream(s, sev, opts...)
}

// Info returns a stream emitting informational lines
func (s *StdSink) Info(opts ...StreamOption) *Stream {
	return newStream(s, SeverityInfo, opts...)
}

// Log returns a stream emitting untagged lines
func (s *StdSink) Log(opts ...StreamOption) *Stream {
	return newStream(s, SeverityLog, opts...)
}

// Warn returns a stream emitting warnings
func (s *StdSink) Warn(opts ...StreamOption) *Stream {
	return newStream(s, SeverityWarn, opts...)
}

// Error returns a stream emitting errors
func (s *StdSink) Error(opts ...StreamOption) *Stream {
	return newStream(s, SeverityError, opts...)
}
