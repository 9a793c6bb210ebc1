// FILE: lixenwraith/sectlog/utility.go
package sectlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// fmtErrorf wrapper
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "sectlog: ") {
		format = "sectlog: " + format
	}
	return fmt.Errorf(format, args...)
}

// combineErrors helper
func combineErrors(err1, err2 error) error {
	if err1 == nil {
		return err2
	}
	if err2 == nil {
		return err1
	}
	return fmt.Errorf("%v; %w", err1, err2)
}

// parseKeyValue splits a "key=value" string.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), "=", 2)
	if len(parts) != 2 {
		return "", "", fmtErrorf("invalid format in override string '%s', expected key=value", arg)
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmtErrorf("key cannot be empty in override string '%s'", arg)
	}
	return key, value, nil
}

// ParseSeverity converts a severity name to its constant.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "info":
		return SeverityInfo, nil
	case "log":
		return SeverityLog, nil
	case "warn", "warning":
		return SeverityWarn, nil
	case "error", "err":
		return SeverityError, nil
	default:
		return 0, fmtErrorf("invalid severity string: '%s' (use info, log, warn, error)", name)
	}
}

// ParseShowInfo accepts a numeric bitmask or flag names joined by '|' or ','
// ("date", "time", "elapsed", "all", "none").
func ParseShowInfo(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if n, err := strconv.ParseInt(value, 0, 64); err == nil {
		if n < 0 || n > ShowAll {
			return 0, fmtErrorf("show_info must be between 0 and %d: %d", ShowAll, n)
		}
		return n, nil
	}

	var bits int64
	fields := strings.FieldsFunc(value, func(r rune) bool { return r == '|' || r == ',' })
	if len(fields) == 0 {
		return 0, fmtErrorf("show_info cannot be empty")
	}
	for _, f := range fields {
		switch strings.ToLower(strings.TrimSpace(f)) {
		case "date":
			bits |= ShowDate
		case "time":
			bits |= ShowTime
		case "elapsed":
			bits |= ShowElapsed
		case "all":
			bits |= ShowAll
		case "none":
		default:
			return 0, fmtErrorf("invalid show_info flag: '%s' (use date, time, elapsed, all, none)", f)
		}
	}
	return bits, nil
}

// NewCorrelationID returns a random id suitable for Stream.Call
func NewCorrelationID() string {
	return uuid.NewString()
}

// samePath compares two requested file paths after cleaning
func samePath(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return filepath.Clean(a) == filepath.Clean(b)
}

// sameWriter reports whether two writers are the same destination.
// Disabled (nil) channels compare equal to each other.
func sameWriter(a, b io.Writer) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// isNilSink catches typed nil pointers hidden in a non-nil interface
func isNilSink(s Sink) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface, reflect.Slice:
		return v.IsNil()
	}
	return false
}

// diagOutput holds the destination of internal diagnostics
var diagOutput atomic.Value // stores writerRef

func init() {
	diagOutput.Store(writerRef{w: os.Stderr})
}

// SetInternalOutput redirects internal diagnostics, nil restores stderr
func SetInternalOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	diagOutput.Store(writerRef{w: w})
}

// internalLog writes sink diagnostics when enabled
func internalLog(enabled bool, format string, args ...any) {
	if !enabled {
		return
	}
	if !strings.HasPrefix(format, "sectlog: ") {
		format = "sectlog: " + format
	}
	fmt.Fprintf(diagOutput.Load().(writerRef).w, format, args...)
}
