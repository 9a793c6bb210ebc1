// FILE: lixenwraith/sectlog/state.go
package sectlog

import (
	"io"
	"sync/atomic"
	"time"
)

// State encapsulates the runtime state of a sink
type State struct {
	ShutdownCalled atomic.Bool // Close entered, finish hook may still write
	Closed         atomic.Bool // Channels released, emits are dropped

	Warnings atomic.Uint64 // Warning emissions
	Errors   atomic.Uint64 // Error emissions

	TotalLines   atomic.Uint64 // Lines written to a channel
	DroppedLines atomic.Uint64 // Lines lost to write failures or emitted after Close

	StartTime atomic.Value // stores time.Time for uptime in banners
}

// writerRef is a wrapper around an io.Writer, atomic value type change workaround
type writerRef struct {
	w io.Writer
}

// sinkRef is a wrapper around a Sink, atomic value type change workaround
type sinkRef struct {
	s Sink
}

// uptime returns the time since the sink was constructed
func (st *State) uptime() time.Duration {
	if start, ok := st.StartTime.Load().(time.Time); ok && !start.IsZero() {
		return time.Since(start)
	}
	return 0
}
