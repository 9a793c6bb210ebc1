// Package formatter renders stream text: bounded printf-style messages and raw value insertion.
package formatter

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"

	"github.com/lixenwraith/sectlog/sanitizer"
)

// MaxMessageSize caps a single rendered message in bytes
const MaxMessageSize = 1024

// TimeLayout is used for time.Time values appended raw
const TimeLayout = "2006/01/02 15:04:05"

// dumper produces compact, deterministic output for composite values
var dumper = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Render sanitizes format, renders it with args and caps the result at MaxMessageSize bytes.
// Oversized output is truncated on a UTF-8 boundary, never reported as an error.
func Render(format string, args ...any) string {
	spec := sanitizer.FormatSpec(format)
	return Truncate(fmt.Sprintf(spec, args...), MaxMessageSize)
}

// Truncate cuts s to at most limit bytes without splitting a multi-byte rune
func Truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// AppendValue appends the raw text form of v to buf.
// Composite values (structs, maps, slices, pointers) are dumped through go-spew.
func AppendValue(buf []byte, v any) []byte {
	switch val := v.(type) {
	case string:
		return append(buf, val...)
	case []byte:
		return append(buf, val...)
	case rune:
		return utf8.AppendRune(buf, val)
	case byte:
		return strconv.AppendUint(buf, uint64(val), 10)
	case int:
		return strconv.AppendInt(buf, int64(val), 10)
	case int8:
		return strconv.AppendInt(buf, int64(val), 10)
	case int16:
		return strconv.AppendInt(buf, int64(val), 10)
	case int64:
		return strconv.AppendInt(buf, val, 10)
	case uint:
		return strconv.AppendUint(buf, uint64(val), 10)
	case uint16:
		return strconv.AppendUint(buf, uint64(val), 10)
	case uint32:
		return strconv.AppendUint(buf, uint64(val), 10)
	case uint64:
		return strconv.AppendUint(buf, val, 10)
	case float32:
		return strconv.AppendFloat(buf, float64(val), 'g', -1, 32)
	case float64:
		return strconv.AppendFloat(buf, val, 'g', -1, 64)
	case bool:
		return strconv.AppendBool(buf, val)
	case nil:
		return append(buf, "nil"...)
	case time.Time:
		return val.AppendFormat(buf, TimeLayout)
	case time.Duration:
		return append(buf, val.String()...)
	case error:
		return append(buf, val.Error()...)
	case fmt.Stringer:
		return append(buf, val.String()...)
	default:
		return append(buf, dumper.Sprintf("%+v", val)...)
	}
}

