// FILE: lixenwraith/sectlog/lifecycle.go
package sectlog

import (
	"fmt"
	"time"
)

// Distinctness records which channels are separate destinations.
// Log is always true; Warn is set when the warning channel differs from the log channel;
// Error is set when the error channel differs from both.
type Distinctness struct {
	Log   bool
	Warn  bool
	Error bool
}

// distinctness compares final channel identities, disabled channels compare equal
func distinctness(ch [channelCount]*channel) Distinctness {
	return Distinctness{
		Log:   true,
		Warn:  ch[chanWarn] != ch[chanLog],
		Error: ch[chanError] != ch[chanWarn] && ch[chanError] != ch[chanLog],
	}
}

// Count returns the number of distinct destinations
func (d Distinctness) Count() int {
	n := 0
	for _, v := range []bool{d.Log, d.Warn, d.Error} {
		if v {
			n++
		}
	}
	return n
}

// BannerLifecycle writes a start banner and a finish summary once per distinct channel
type BannerLifecycle struct {
	Name string // Defaults to "sectlog"
}

var _ Lifecycle = BannerLifecycle{}

// OnLogStart writes the start banner
func (b BannerLifecycle) OnLogStart(sink *StdSink, d Distinctness) {
	line := fmt.Sprintf("=== %s started %s (%d destination(s)) ===",
		b.name(), time.Now().Format(time.RFC3339), d.Count())
	b.each(sink, d, line)
}

// OnLogFinish writes the finish banner with warning and error totals
func (b BannerLifecycle) OnLogFinish(sink *StdSink, d Distinctness) {
	line := fmt.Sprintf("=== %s finished after %.2fs: %d warning(s), %d error(s) ===",
		b.name(), sink.Uptime().Seconds(), sink.Warnings(), sink.Errors())
	b.each(sink, d, line)
}

func (b BannerLifecycle) name() string {
	if b.Name == "" {
		return "sectlog"
	}
	return b.Name
}

// each writes line to every distinct channel
func (b BannerLifecycle) each(sink *StdSink, d Distinctness, line string) {
	if d.Log {
		sink.WriteChannel(SeverityLog, line)
	}
	if d.Warn {
		sink.WriteChannel(SeverityWarn, line)
	}
	if d.Error {
		sink.WriteChannel(SeverityError, line)
	}
}
