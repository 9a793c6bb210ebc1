// FILE: lixenwraith/sectlog/formatter/formatter_test.go
package formatter

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

type point struct {
	X, Y int
}

type named string

func (n named) String() string { return "named:" + string(n) }

func TestRender(t *testing.T) {
	t.Run("plain format matches fmt", func(t *testing.T) {
		cases := []struct {
			format string
			args   []any
		}{
			{"count=%d name=%s", []any{3, "x"}},
			{"%5.1f|%-4s|%x", []any{2.25, "ab", 255}},
			{"no verbs", nil},
			{"100%%", nil},
		}
		for _, c := range cases {
			assert.Equal(t, fmt.Sprintf(c.format, c.args...), Render(c.format, c.args...))
		}
	})

	t.Run("percent t renders as float", func(t *testing.T) {
		assert.Equal(t, "took 1.500000 s", Render("took %t s", 1.5))
		assert.Equal(t, "a=0.250000 b=2.000000", Render("a=%t b=%t", 0.25, 2.0))
	})

	t.Run("escaped percent t", func(t *testing.T) {
		assert.Equal(t, "%f literal", Render("%%t literal"))
	})

	t.Run("output capped", func(t *testing.T) {
		out := Render("%s", strings.Repeat("a", 5000))
		assert.Len(t, out, MaxMessageSize)
	})

	t.Run("argument mismatch is not an error", func(t *testing.T) {
		out := Render("%d %d", 1)
		assert.Contains(t, out, "1 %!d(MISSING)")
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "ab", Truncate("abc", 2))

	// "é" is two bytes, never split
	s := strings.Repeat("é", 10)
	out := Truncate(s, 5)
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, 4, len(out))
}

func TestAppendValue(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"string", "text", "text"},
		{"bytes", []byte("raw"), "raw"},
		{"int", 42, "42"},
		{"negative int64", int64(-7), "-7"},
		{"uint64", uint64(9), "9"},
		{"float", 1.5, "1.5"},
		{"bool", true, "true"},
		{"nil", nil, "nil"},
		{"time", ts, "2024/01/02 03:04:05"},
		{"duration", 1500 * time.Millisecond, "1.5s"},
		{"error", errors.New("boom"), "boom"},
		{"stringer", named("n"), "named:n"},
		{"rune", 'x', "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(AppendValue(nil, tt.value)))
		})
	}

	t.Run("composite uses spew", func(t *testing.T) {
		out := string(AppendValue(nil, point{X: 1, Y: 2}))
		assert.Contains(t, out, "X:1")
		assert.Contains(t, out, "Y:2")

		out = string(AppendValue(nil, map[string]int{"b": 2, "a": 1}))
		assert.Equal(t, "map[a:1 b:2]", out)
	})

	t.Run("appends to existing buffer", func(t *testing.T) {
		buf := []byte("n=")
		buf = AppendValue(buf, 5)
		assert.Equal(t, "n=5", string(buf))
	})
}
