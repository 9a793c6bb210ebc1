// FILE: lixenwraith/sectlog/channel.go
package sectlog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
)

// Channel indices in resolution order
const (
	chanLog = iota
	chanWarn
	chanError
	channelCount
)

var channelNames = [channelCount]string{"log", "warning", "error"}

type targetKind int

const (
	targetDisabled targetKind = iota
	targetWriter
	targetFile
)

// Target describes the destination requested for one channel
type Target struct {
	kind targetKind
	w    io.Writer
	path string
}

// ToWriter binds a channel to a caller-owned writer; nil disables the channel.
// The sink never closes a caller-owned writer.
func ToWriter(w io.Writer) Target {
	if w == nil {
		return Disabled()
	}
	return Target{kind: targetWriter, w: w}
}

// ToFile binds a channel to a file the sink opens and owns; an empty path disables the channel
func ToFile(path string) Target {
	if path == "" {
		return Disabled()
	}
	return Target{kind: targetFile, path: path}
}

// Disabled returns a target that drops every line
func Disabled() Target {
	return Target{}
}

// String describes the target for banners and diagnostics
func (t Target) String() string {
	switch t.kind {
	case targetWriter:
		return fmt.Sprintf("writer(%T)", t.w)
	case targetFile:
		return "file(" + t.path + ")"
	default:
		return "disabled"
	}
}

// channel is a reference-counted destination shared by aliased channels and sink clones
type channel struct {
	mu   sync.Mutex
	w    io.Writer
	file *os.File // Set when the sink opened the destination itself
	name string
	refs atomic.Int64
}

func newChannel(w io.Writer, file *os.File, name string) *channel {
	c := &channel{w: w, file: file, name: name}
	c.refs.Store(1)
	return c
}

// acquire adds a reference, nil channels stay nil
func (c *channel) acquire() *channel {
	if c != nil {
		c.refs.Add(1)
	}
	return c
}

// write sends one finished line to the destination
func (c *channel) write(line []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := c.w.Write(line)
	return err
}

// release drops a reference and closes an owned file when the last reference goes
func (c *channel) release(diag bool) error {
	if c == nil || c.refs.Add(-1) > 0 {
		return nil
	}
	if c.file == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.file.Sync(); err != nil {
		internalLog(diag, "failed to sync log file '%s': %v\n", c.name, err)
	}
	if err := c.file.Close(); err != nil {
		return fmtErrorf("failed to close log file '%s': %w", c.name, err)
	}
	return nil
}

// openChannelFile opens path for writing, creating it when missing
func openChannelFile(path string, mode OpenMode) (*os.File, error) {
	flags := os.O_CREATE | os.O_WRONLY
	if mode == OpenTruncate {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_APPEND
	}

	file, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return nil, fmtErrorf("failed to open/create log file '%s': %w", path, err)
	}
	return file, nil
}

// resolveChannels binds targets in log, warning, error order.
// A target requesting the same path or writer as an earlier channel shares that channel's
// destination instead of opening a second handle. A file that fails to open leaves the
// channel disabled and is reported only to internal diagnostics.
func resolveChannels(targets [channelCount]Target, mode OpenMode, diag bool) [channelCount]*channel {
	var resolved [channelCount]*channel

	for i, t := range targets {
		if j := aliasOf(targets[:i], t); j >= 0 {
			resolved[i] = resolved[j].acquire()
			continue
		}

		switch t.kind {
		case targetWriter:
			resolved[i] = newChannel(t.w, nil, t.String())
		case targetFile:
			file, err := openChannelFile(t.path, mode)
			if err != nil {
				internalLog(diag, "%s channel disabled: %v\n", channelNames[i], err)
				continue
			}
			resolved[i] = newChannel(file, file, t.path)
		}
	}

	return resolved
}

// aliasOf returns the index of the first earlier target requesting the same destination as t
func aliasOf(earlier []Target, t Target) int {
	for j, e := range earlier {
		if e.kind != t.kind {
			continue
		}
		switch t.kind {
		case targetFile:
			if samePath(e.path, t.path) {
				return j
			}
		case targetWriter:
			if sameWriter(e.w, t.w) {
				return j
			}
		}
	}
	return -1
}

// channelFor maps a severity to its channel; info shares the log channel
func channelFor(sev Severity) int {
	switch sev {
	case SeverityWarn:
		return chanWarn
	case SeverityError:
		return chanError
	default:
		return chanLog
	}
}
