// FILE: lixenwraith/sectlog/builder.go
package sectlog

import (
	"io"

	"github.com/lixenwraith/sectlog/sanitizer"
)

// Builder provides a fluent API for building sinks.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg       *Config
	writers   [channelCount]io.Writer // Override file paths when set
	lifecycle Lifecycle
	err       error // Accumulate errors for deferred handling
}

// NewBuilder creates a new sink builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build validates the configuration and creates the sink.
func (b *Builder) Build() (*StdSink, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}

	targets := [channelCount]Target{ToFile(b.cfg.LogFile), ToFile(b.cfg.WarnFile), ToFile(b.cfg.ErrorFile)}
	for i, w := range b.writers {
		if w != nil {
			targets[i] = ToWriter(w)
		}
	}

	opts := []SinkOption{WithConfig(b.cfg)}
	if b.lifecycle != nil {
		opts = append(opts, WithLifecycle(b.lifecycle))
	}
	return NewStdSink(targets[chanLog], targets[chanWarn], targets[chanError], opts...), nil
}

// Config returns a copy of the configuration being built.
func (b *Builder) Config() *Config {
	return b.cfg.Clone()
}

// LogFile sets the log channel file.
func (b *Builder) LogFile(path string) *Builder {
	b.cfg.LogFile = path
	b.writers[chanLog] = nil
	return b
}

// WarnFile sets the warning channel file.
func (b *Builder) WarnFile(path string) *Builder {
	b.cfg.WarnFile = path
	b.writers[chanWarn] = nil
	return b
}

// ErrorFile sets the error channel file.
func (b *Builder) ErrorFile(path string) *Builder {
	b.cfg.ErrorFile = path
	b.writers[chanError] = nil
	return b
}

// LogWriter binds the log channel to w instead of a file.
func (b *Builder) LogWriter(w io.Writer) *Builder {
	b.writers[chanLog] = w
	return b
}

// WarnWriter binds the warning channel to w instead of a file.
func (b *Builder) WarnWriter(w io.Writer) *Builder {
	b.writers[chanWarn] = w
	return b
}

// ErrorWriter binds the error channel to w instead of a file.
func (b *Builder) ErrorWriter(w io.Writer) *Builder {
	b.writers[chanError] = w
	return b
}

// OpenMode sets how file channels are opened.
func (b *Builder) OpenMode(mode OpenMode) *Builder {
	b.cfg.OpenMode = string(mode)
	return b
}

// ShowInfo sets the title bitmask.
func (b *Builder) ShowInfo(mask int64) *Builder {
	b.cfg.ShowInfo = mask
	return b
}

// ShowInfoString sets the title bitmask from flag names, e.g. "date|elapsed".
func (b *Builder) ShowInfoString(flags string) *Builder {
	if b.err != nil {
		return b
	}
	bits, err := ParseShowInfo(flags)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.ShowInfo = bits
	return b
}

// TitleTemplate sets a title template used instead of the bitmask.
func (b *Builder) TitleTemplate(tmpl string) *Builder {
	b.cfg.TitleTemplate = tmpl
	return b
}

// EchoConsole enables mirroring lines to the console.
func (b *Builder) EchoConsole(enable bool) *Builder {
	b.cfg.EchoConsole = enable
	return b
}

// ConsoleTarget sets the console stream, "stdout" or "stderr".
func (b *Builder) ConsoleTarget(target string) *Builder {
	b.cfg.ConsoleTarget = target
	return b
}

// ConsoleColor colors echoed lines by severity.
func (b *Builder) ConsoleColor(enable bool) *Builder {
	b.cfg.ConsoleColor = enable
	return b
}

// Sanitization sets the message body policy.
func (b *Builder) Sanitization(policy sanitizer.PolicyPreset) *Builder {
	b.cfg.Sanitization = string(policy)
	return b
}

// Banner enables start and finish banners.
func (b *Builder) Banner(enable bool) *Builder {
	b.cfg.Banner = enable
	return b
}

// Lifecycle installs custom start and finish hooks, replacing banners.
func (b *Builder) Lifecycle(l Lifecycle) *Builder {
	b.lifecycle = l
	return b
}

// InternalErrorsToStderr reports channel failures to stderr.
func (b *Builder) InternalErrorsToStderr(enable bool) *Builder {
	b.cfg.InternalErrorsToStderr = enable
	return b
}

// Override applies "key=value" overrides.
func (b *Builder) Override(overrides ...string) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.cfg.ApplyOverride(overrides...); err != nil {
		b.err = err
	}
	return b
}

// Example usage:
// sink, err := sectlog.NewBuilder().
//
//	LogFile("/var/log/app.log").
//	WarnFile("/var/log/app.log").
//	ErrorWriter(os.Stderr).
//	ShowInfoString("time|elapsed").
//	Banner(true).
//	Build()
//
// if err == nil {
//
//	 defer sink.Close()
//	 sink.Info().Append("sink initialized").Close()
//
// }
