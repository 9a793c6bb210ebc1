package compat

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/sectlog"
)

// createTestCompatBuilder creates a standard setup for compatibility adapter tests.
// Log and info lines go to logBuf, warnings and errors to errBuf.
func createTestCompatBuilder(t *testing.T) (*Builder, *sectlog.StdSink, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var logBuf, errBuf bytes.Buffer
	appSink, err := sectlog.NewBuilder().
		LogWriter(&logBuf).
		WarnWriter(&errBuf).
		ErrorWriter(&errBuf).
		Build()
	require.NoError(t, err)

	builder := NewBuilder().WithSink(appSink)
	return builder, appSink, &logBuf, &errBuf
}

func lines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

// TestCompatBuilder verifies the compatibility builder can be initialized correctly
func TestCompatBuilder(t *testing.T) {
	t.Run("with existing sink", func(t *testing.T) {
		builder, s, _, _ := createTestCompatBuilder(t)
		defer s.Close()

		gnetAdapter, err := builder.BuildGnet()
		require.NoError(t, err)
		assert.NotNil(t, gnetAdapter)
		assert.Equal(t, sectlog.Sink(s), gnetAdapter.sink)

		// Provided sinks are not closed by the builder
		require.NoError(t, builder.Close())
		assert.True(t, s.Enabled(sectlog.SeverityLog))
	})

	t.Run("with config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "compat.log")
		logCfg := sectlog.DefaultConfig()
		logCfg.LogFile = path

		builder := NewBuilder().WithConfig(logCfg)
		fasthttpAdapter, err := builder.BuildFastHTTP()
		require.NoError(t, err)
		assert.NotNil(t, fasthttpAdapter)

		s1, err := builder.GetSink()
		require.NoError(t, err)
		s2, err := builder.GetSink()
		require.NoError(t, err)
		assert.Same(t, s1, s2, "builder caches the created sink")

		fasthttpAdapter.Printf("served %d requests", 3)
		require.NoError(t, builder.Close())

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "|INFO> fasthttp: served 3 requests\n", string(content))
	})

	t.Run("invalid config", func(t *testing.T) {
		logCfg := sectlog.DefaultConfig()
		logCfg.OpenMode = "rotate"

		_, err := NewBuilder().WithConfig(logCfg).BuildGnet()
		assert.Error(t, err)
	})

	t.Run("nil sink", func(t *testing.T) {
		_, err := NewBuilder().WithSink(nil).BuildFastHTTP()
		assert.Error(t, err)
	})

	t.Run("default sink", func(t *testing.T) {
		s, err := NewBuilder().GetSink()
		require.NoError(t, err)
		assert.Equal(t, sectlog.Default(), s)
	})
}

// TestGnetAdapter tests the gnet adapter's severity routing
func TestGnetAdapter(t *testing.T) {
	builder, s, logBuf, errBuf := createTestCompatBuilder(t)
	defer s.Close()

	var fatalMsg string
	adapter, err := builder.BuildGnet(WithFatalHandler(func(msg string) {
		fatalMsg = msg
	}))
	require.NoError(t, err)

	adapter.Debugf("gnet debug id=%d", 1)
	adapter.Infof("gnet info id=%d", 2)
	adapter.Warnf("gnet warn id=%d", 3)
	adapter.Errorf("gnet error id=%d", 4)
	adapter.Fatalf("gnet fatal id=%d", 5)

	assert.Equal(t, []string{
		"|INFO> gnet: gnet debug id=1",
		"|INFO> gnet: gnet info id=2",
	}, lines(logBuf))

	assert.Equal(t, []string{
		"|WARNING> gnet: gnet warn id=3",
		"|ERROR> gnet: gnet error id=4",
		"|ERROR> gnet: fatal: gnet fatal id=5",
	}, lines(errBuf))

	assert.Equal(t, "gnet fatal id=5", fatalMsg, "Custom fatal handler should have been called")
	assert.Equal(t, uint64(1), s.Warnings())
	assert.Equal(t, uint64(2), s.Errors())
}

// TestGnetAdapterPrefix checks the prefix option and message capping
func TestGnetAdapterPrefix(t *testing.T) {
	var buf bytes.Buffer
	s := sectlog.NewWriterSink(&buf, nil, nil)
	defer s.Close()

	adapter := NewGnetAdapter(s, WithGnetPrefix(""))
	adapter.Infof("%s", strings.Repeat("x", 3000))

	line := strings.TrimSuffix(buf.String(), "\n")
	assert.Equal(t, len("|INFO> ")+1024, len(line))
}

// TestFastHTTPAdapter tests the fasthttp adapter's severity detection
func TestFastHTTPAdapter(t *testing.T) {
	builder, s, logBuf, errBuf := createTestCompatBuilder(t)
	defer s.Close()

	adapter, err := builder.BuildFastHTTP()
	require.NoError(t, err)

	testMessages := []string{
		"this is some informational message",
		"a debug message for the developers",
		"warning: something might be wrong",
		"an error occurred while processing",
	}
	for _, msg := range testMessages {
		adapter.Printf("%s", msg)
	}

	assert.Equal(t, []string{
		"|INFO> fasthttp: this is some informational message",
		"fasthttp: a debug message for the developers",
	}, lines(logBuf))

	assert.Equal(t, []string{
		"|WARNING> fasthttp: warning: something might be wrong",
		"|ERROR> fasthttp: an error occurred while processing",
	}, lines(errBuf))
}

func TestFastHTTPAdapterOptions(t *testing.T) {
	var buf bytes.Buffer
	s := sectlog.NewWriterSink(&buf, &buf, &buf)
	defer s.Close()

	adapter := NewFastHTTPAdapter(s,
		WithDefaultSeverity(sectlog.SeverityLog),
		WithSeverityDetector(nil),
		WithFastHTTPPrefix("[http] "),
	)
	adapter.Printf("an error that is not classified")

	assert.Equal(t, "[http] an error that is not classified\n", buf.String())
	assert.Equal(t, uint64(0), s.Errors())
}

func TestDetectSeverity(t *testing.T) {
	tests := []struct {
		msg      string
		expected sectlog.Severity
		ok       bool
	}{
		{"Connection FAILED", sectlog.SeverityError, true},
		{"panic recovered", sectlog.SeverityError, true},
		{"deprecated header", sectlog.SeverityWarn, true},
		{"trace: accepted conn", sectlog.SeverityLog, true},
		{"request served", sectlog.SeverityInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			sev, ok := DetectSeverity(tt.msg)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, sev)
		})
	}
}
