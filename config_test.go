// FILE: lixenwraith/sectlog/config_test.go
package sectlog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Empty(t, cfg.LogFile)
	assert.Empty(t, cfg.WarnFile)
	assert.Empty(t, cfg.ErrorFile)
	assert.Equal(t, "append", cfg.OpenMode)
	assert.Equal(t, int64(0), cfg.ShowInfo)
	assert.Equal(t, "stdout", cfg.ConsoleTarget)
	assert.Equal(t, "raw", cfg.Sanitization)
	assert.False(t, cfg.Banner)
	assert.False(t, cfg.InternalErrorsToStderr)
	assert.NoError(t, cfg.Validate())
}

func TestConfigClone(t *testing.T) {
	cfg1 := DefaultConfig()
	cfg1.LogFile = "/custom/path.log"
	cfg1.ShowInfo = ShowTime

	cfg2 := cfg1.Clone()
	assert.Equal(t, cfg1, cfg2)

	// Modify original
	cfg1.ShowInfo = ShowAll

	// Verify clone unchanged
	assert.Equal(t, ShowTime, cfg2.ShowInfo)
	assert.Equal(t, int64(0), DefaultConfig().ShowInfo, "defaults are never shared")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"open mode", func(c *Config) { c.OpenMode = "rotate" }, "invalid open_mode: 'rotate' (must be one of: append truncate)"},
		{"show_info high", func(c *Config) { c.ShowInfo = 8 }, "invalid show_info: '8' (must be <= 7)"},
		{"show_info negative", func(c *Config) { c.ShowInfo = -1 }, "invalid show_info: '-1' (must be >= 0)"},
		{"console target", func(c *Config) { c.ConsoleTarget = "tty" }, "must be one of: stdout stderr"},
		{"sanitization", func(c *Config) { c.Sanitization = "html" }, "invalid sanitization"},
		{"title template", func(c *Config) { c.TitleTemplate = "{{time" }, "invalid title_template"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewConfigFromFile(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		cfg, err := NewConfigFromFile(filepath.Join(t.TempDir(), "absent.toml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("log table", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.toml")
		content := `
[log]
log_file = "/var/log/app.log"
warn_file = "/var/log/app.log"
open_mode = "truncate"
show_info = 6
banner = true
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := NewConfigFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, "/var/log/app.log", cfg.LogFile)
		assert.Equal(t, "/var/log/app.log", cfg.WarnFile)
		assert.Empty(t, cfg.ErrorFile)
		assert.Equal(t, "truncate", cfg.OpenMode)
		assert.Equal(t, ShowTime|ShowElapsed, cfg.ShowInfo)
		assert.True(t, cfg.Banner)
		assert.Equal(t, "stdout", cfg.ConsoleTarget, "unset keys keep defaults")
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("[log]\nopen_mode = \"rotate\"\n"), 0644))

		_, err := NewConfigFromFile(path)
		assert.Error(t, err)
	})
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.toml")

	cfg := DefaultConfig()
	cfg.LogFile = "app.log"
	cfg.ErrorFile = "errors.log"
	cfg.ShowInfo = ShowAll
	cfg.EchoConsole = true
	cfg.ConsoleTarget = "stderr"
	cfg.Sanitization = "escape"
	require.NoError(t, cfg.SaveConfig(path))

	content := readFile(t, path)
	assert.Contains(t, content, "[log]")
	assert.Contains(t, content, "log_file = 'app.log'")

	loaded, err := NewConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestNewConfigFromOverrides(t *testing.T) {
	cfg, err := NewConfigFromOverrides(
		"log_file=app.log",
		"show_info=date|time",
		"echo_console=true",
		"console_color=1",
		"sanitization=strip",
		"banner=true",
	)
	require.NoError(t, err)
	assert.Equal(t, "app.log", cfg.LogFile)
	assert.Equal(t, ShowDate|ShowTime, cfg.ShowInfo)
	assert.True(t, cfg.EchoConsole)
	assert.True(t, cfg.ConsoleColor)
	assert.Equal(t, "strip", cfg.Sanitization)
	assert.True(t, cfg.Banner)

	_, err = NewConfigFromOverrides("open_mode=rotate")
	assert.Error(t, err, "overrides are validated")
}

func TestApplyOverride(t *testing.T) {
	t.Run("single error", func(t *testing.T) {
		cfg := DefaultConfig()
		err := cfg.ApplyOverride("unknown_key=1")
		require.Error(t, err)
		assert.Equal(t, "sectlog: unknown configuration key 'unknown_key'", err.Error())
	})

	t.Run("multiple errors", func(t *testing.T) {
		cfg := DefaultConfig()
		err := cfg.ApplyOverride("banner=maybe", "noequals", "warn_file=w.log", "show_info=decade")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sectlog: multiple configuration errors:")
		assert.Contains(t, err.Error(), "\n  1. invalid boolean value for banner 'maybe'")
		assert.Contains(t, err.Error(), "\n  2. invalid format in override string 'noequals'")
		assert.Contains(t, err.Error(), "\n  3. invalid show_info value 'decade'")
		assert.Equal(t, "w.log", cfg.WarnFile, "valid overrides still apply")
	})

	t.Run("whitespace", func(t *testing.T) {
		cfg := DefaultConfig()
		require.NoError(t, cfg.ApplyOverride("  title_template = [{{time}}]  "))
		assert.Equal(t, "[{{time}}]", cfg.TitleTemplate)
	})
}
