// FILE: lixenwraith/sectlog/default_test.go
package sectlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useDefault installs s as the package sink for the duration of the test
func useDefault(t *testing.T, s Sink) {
	t.Helper()
	prev := SetDefault(s)
	t.Cleanup(func() { SetDefault(prev) })
}

func TestDefaultSinkIsStdSink(t *testing.T) {
	s, ok := Default().(*StdSink)
	require.True(t, ok)
	assert.True(t, s.Enabled(SeverityLog))
	assert.True(t, s.Enabled(SeverityError))
	assert.Equal(t, Distinctness{Log: true, Warn: true, Error: false}, s.Distinctness())
}

func TestSetDefault(t *testing.T) {
	rec := &recordingSink{}
	original := Default()

	prev := SetDefault(rec)
	assert.Equal(t, original, prev)
	assert.Equal(t, Sink(rec), Default())

	prev = SetDefault(nil)
	assert.Equal(t, Sink(rec), prev)
	assert.Equal(t, Discard, Default(), "nil installs the discarding sink")

	SetDefault(original)
	assert.Equal(t, original, Default())
}

func TestPackageStreams(t *testing.T) {
	rec := &recordingSink{}
	useDefault(t, rec)

	Info().Append("i").Close()
	Log().Append("l").Close()
	Warn(WithID("w-id")).Append("w").Close()
	Error().Append("e").Close()

	assert.Equal(t, []emitted{
		{sev: SeverityInfo, msg: "i"},
		{sev: SeverityLog, msg: "l"},
		{sev: SeverityWarn, msg: "w", id: "w-id"},
		{sev: SeverityError, msg: "e"},
	}, rec.lines)
}

func TestPackageSection(t *testing.T) {
	rec := &recordingSink{}
	useDefault(t, rec)

	s := Section(SeverityInfo, "boot", WithID("b-1"))
	assert.Equal(t, "boot", s.SectionID())
	s.SectionBegin("start").SectionEnd("ok").Close()

	abandoned := Section(SeverityError, "lost")
	abandoned.SectionBegin("never finished").Close()

	assert.Equal(t, []emitted{
		{sev: SeverityInfo, msg: "SectionBegin boot startSectionEnd boot ok", id: "b-1"},
	}, rec.lines)
}
