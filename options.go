// FILE: lixenwraith/sectlog/options.go
package sectlog

import (
	"io"
	"time"

	"github.com/lixenwraith/sectlog/sanitizer"
)

// sinkOptions collects construction settings for a StdSink
type sinkOptions struct {
	cfg       *Config
	lifecycle Lifecycle
	echo      io.Writer // Overrides console_target when set
	now       func() time.Time
}

// SinkOption configures a StdSink at construction
type SinkOption func(*sinkOptions)

func newSinkOptions(opts []SinkOption) sinkOptions {
	o := sinkOptions{cfg: DefaultConfig(), now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithConfig copies title, console, sanitization, banner and diagnostics settings from cfg.
// Channel paths in cfg are ignored; targets are passed to the constructor.
func WithConfig(cfg *Config) SinkOption {
	return func(o *sinkOptions) {
		if cfg == nil {
			return
		}
		o.cfg = cfg.Clone()
		if cfg.Banner && o.lifecycle == nil {
			o.lifecycle = BannerLifecycle{}
		}
	}
}

// WithOpenMode sets how file channels are opened
func WithOpenMode(mode OpenMode) SinkOption {
	return func(o *sinkOptions) {
		o.cfg.OpenMode = string(mode)
	}
}

// WithShowInfo sets the title bitmask, see ShowDate, ShowTime and ShowElapsed
func WithShowInfo(mask int64) SinkOption {
	return func(o *sinkOptions) {
		o.cfg.ShowInfo = mask
	}
}

// WithTitleTemplate renders titles from a template with {{date}} {{time}} {{elapsed}} {{id}} tags
func WithTitleTemplate(tmpl string) SinkOption {
	return func(o *sinkOptions) {
		o.cfg.TitleTemplate = tmpl
	}
}

// WithConsoleEcho mirrors every emitted line to stdout, or stderr when target is "stderr"
func WithConsoleEcho(target string) SinkOption {
	return func(o *sinkOptions) {
		o.cfg.EchoConsole = true
		o.cfg.ConsoleTarget = target
	}
}

// WithEchoWriter mirrors every emitted line to w
func WithEchoWriter(w io.Writer) SinkOption {
	return func(o *sinkOptions) {
		o.cfg.EchoConsole = w != nil
		o.echo = w
	}
}

// WithConsoleColor colors echoed lines by severity
func WithConsoleColor(enabled bool) SinkOption {
	return func(o *sinkOptions) {
		o.cfg.ConsoleColor = enabled
	}
}

// WithSanitization sets the policy applied to message bodies
func WithSanitization(policy sanitizer.PolicyPreset) SinkOption {
	return func(o *sinkOptions) {
		o.cfg.Sanitization = string(policy)
	}
}

// WithLifecycle installs start and finish hooks
func WithLifecycle(l Lifecycle) SinkOption {
	return func(o *sinkOptions) {
		o.lifecycle = l
	}
}

// WithInternalErrors reports channel failures to the internal diagnostics writer
func WithInternalErrors(enabled bool) SinkOption {
	return func(o *sinkOptions) {
		o.cfg.InternalErrorsToStderr = enabled
	}
}

// withClock replaces the wall clock used for titles
func withClock(now func() time.Time) SinkOption {
	return func(o *sinkOptions) {
		o.now = now
	}
}
