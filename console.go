// FILE: lixenwraith/sectlog/console.go
package sectlog

import (
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

// console mirrors emitted lines to a terminal stream
type console struct {
	mu     sync.Mutex
	w      io.Writer
	colors map[Severity]*color.Color // nil when coloring is off
}

var severityColors = map[Severity][]color.Attribute{
	SeverityInfo:  {color.FgCyan},
	SeverityWarn:  {color.FgYellow},
	SeverityError: {color.FgRed, color.Bold},
}

// newConsole returns nil when echo is disabled
func newConsole(o sinkOptions) *console {
	if !o.cfg.EchoConsole {
		return nil
	}

	w := o.echo
	if w == nil {
		if o.cfg.ConsoleTarget == "stderr" {
			w = os.Stderr
		} else {
			w = os.Stdout
		}
	}

	c := &console{w: w}
	if o.cfg.ConsoleColor {
		c.colors = make(map[Severity]*color.Color, len(severityColors))
		for sev, attrs := range severityColors {
			col := color.New(attrs...)
			// Explicit request overrides terminal detection
			col.EnableColor()
			c.colors[sev] = col
		}
	}
	return c
}

// write echoes one finished line, plain log lines are never colored
func (c *console) write(sev Severity, line []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if col, ok := c.colors[sev]; ok {
		body := line
		if n := len(body); n > 0 && body[n-1] == '\n' {
			body = body[:n-1]
		}
		_, _ = col.Fprint(c.w, string(body))
		_, _ = io.WriteString(c.w, "\n")
		return
	}
	_, _ = c.w.Write(line)
}
