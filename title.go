// FILE: lixenwraith/sectlog/title.go
package sectlog

import (
	"fmt"
	"time"

	"github.com/valyala/fasttemplate"
)

// Title template delimiters
const (
	templateStart = "{{"
	templateEnd   = "}}"
)

// titleClock renders the prefix written before every message.
// The first render latches the start reference used for elapsed seconds.
// Not safe for concurrent use; StdSink serializes access.
type titleClock struct {
	mask    int64
	tmpl    *fasttemplate.Template
	now     func() time.Time
	started bool
	start   time.Time
}

func newTitleClock(mask int64, template string, now func() time.Time, diag bool) *titleClock {
	if now == nil {
		now = time.Now
	}
	c := &titleClock{mask: mask & ShowAll, now: now}
	if template != "" {
		tmpl, err := fasttemplate.NewTemplate(template, templateStart, templateEnd)
		if err != nil {
			internalLog(diag, "invalid title template, using show_info: %v\n", err)
		} else {
			c.tmpl = tmpl
		}
	}
	return c
}

// appendTitle appends the title for one line to buf
func (c *titleClock) appendTitle(buf []byte, id string) []byte {
	now := c.now()
	first := !c.started
	if first {
		c.started = true
		c.start = now
	}

	if c.tmpl != nil {
		return append(buf, c.tmpl.ExecuteString(map[string]any{
			"date":    now.Format("2006/01/02"),
			"time":    now.Format("15:04:05"),
			"elapsed": fmt.Sprintf("%8.2f", c.elapsed(now)),
			"id":      id,
		})...)
	}

	if c.mask&ShowDate != 0 {
		buf = now.AppendFormat(buf, dateLayout)
	}
	if c.mask&ShowTime != 0 || (c.mask&ShowElapsed != 0 && first) {
		buf = now.AppendFormat(buf, timeLayout)
	}
	if !first && c.mask&ShowElapsed != 0 {
		buf = fmt.Appendf(buf, elapsedFormat, c.elapsed(now))
	}
	return buf
}

// elapsed returns seconds since the start reference at millisecond resolution
func (c *titleClock) elapsed(now time.Time) float64 {
	return float64(now.Sub(c.start).Milliseconds()) / 1000.0
}
