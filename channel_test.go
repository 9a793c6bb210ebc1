// FILE: lixenwraith/sectlog/channel_test.go
package sectlog

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("device gone") }

func TestTargetString(t *testing.T) {
	assert.Equal(t, "disabled", Disabled().String())
	assert.Equal(t, "disabled", ToFile("").String())
	assert.Equal(t, "disabled", ToWriter(nil).String())
	assert.Equal(t, "file(app.log)", ToFile("app.log").String())
	assert.Equal(t, "writer(*bytes.Buffer)", ToWriter(&bytes.Buffer{}).String())
}

func TestChannelFor(t *testing.T) {
	assert.Equal(t, chanLog, channelFor(SeverityInfo))
	assert.Equal(t, chanLog, channelFor(SeverityLog))
	assert.Equal(t, chanWarn, channelFor(SeverityWarn))
	assert.Equal(t, chanError, channelFor(SeverityError))
	assert.Equal(t, chanLog, channelFor(Severity(99)))
}

func TestResolveChannelsRefCounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shared.log")
	var buf bytes.Buffer

	ch := resolveChannels([channelCount]Target{ToFile(path), ToFile(path), ToWriter(&buf)}, OpenAppend, false)

	require.NotNil(t, ch[chanLog])
	assert.Same(t, ch[chanLog], ch[chanWarn])
	assert.NotSame(t, ch[chanLog], ch[chanError])
	assert.Equal(t, int64(2), ch[chanLog].refs.Load())
	assert.Equal(t, int64(1), ch[chanError].refs.Load())

	// First release keeps the shared file open
	require.NoError(t, ch[chanLog].release(false))
	require.NoError(t, ch[chanWarn].write([]byte("still open\n")))
	require.NoError(t, ch[chanWarn].release(false))
	assert.Error(t, ch[chanWarn].write([]byte("closed\n")))

	assert.Equal(t, "still open\n", readFile(t, path))
	require.NoError(t, ch[chanError].release(false), "caller-owned writers are never closed")
}

func TestResolveChannelsFailedAlias(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "missing", "dir", "x.log")
	ch := resolveChannels([channelCount]Target{ToFile(bad), ToFile(bad), Disabled()}, OpenAppend, false)

	assert.Nil(t, ch[chanLog])
	assert.Nil(t, ch[chanWarn], "an alias of a failed file stays disabled")
	assert.Nil(t, ch[chanError])

	var nilChannel *channel
	assert.Nil(t, nilChannel.acquire())
	assert.NoError(t, nilChannel.release(false))
}

func TestWriteFailureCountsDropped(t *testing.T) {
	diag := captureInternal(t)
	s := NewWriterSink(failingWriter{}, nil, nil, WithInternalErrors(true))
	defer s.Close()

	s.Emit(SeverityLog, "lost", "")
	assert.Equal(t, uint64(1), s.Dropped())
	assert.Equal(t, uint64(0), s.Lines())
	assert.Contains(t, diag.String(), "device gone")
}

func TestStateUptime(t *testing.T) {
	var st State
	assert.Zero(t, st.uptime(), "no start time recorded")

	st.StartTime.Store(time.Now().Add(-time.Second))
	assert.GreaterOrEqual(t, st.uptime(), time.Second)
}
