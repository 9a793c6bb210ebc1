// FILE: lixenwraith/sectlog/sanitizer/sanitizer.go
// Package sanitizer rewrites printf format strings before rendering and cleans
// finished message bodies before they reach a terminal or file.
package sanitizer

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxFormatSize caps the format string when it has to be rewritten
const MaxFormatSize = 1024

// Filter flags for character matching
const (
	FilterNonPrintable uint64 = 1 << iota // Runes not printable by strconv.IsPrint, except '\n' and '\t'
	FilterControl                         // Control characters (unicode.IsControl), including '\n'
)

// Transform flags for character transformation
const (
	TransformStrip      uint64 = 1 << iota // Removes the character
	TransformHexEncode                     // Encodes the character's UTF-8 bytes as "<XXYY>"
	TransformJSONEscape                    // Escapes the character with JSON-style backslashes
)

// PolicyPreset names a pre-configured rule set
type PolicyPreset string

const (
	PolicyRaw    PolicyPreset = "raw"    // Passthrough
	PolicyTxt    PolicyPreset = "txt"    // Hex-encode non-printables, keep line breaks and tabs
	PolicyStrip  PolicyPreset = "strip"  // Drop non-printables, keep line breaks and tabs
	PolicyEscape PolicyPreset = "escape" // Backslash-escape control characters, one physical line per message
)

// rule represents a single sanitization rule
type rule struct {
	filter    uint64
	transform uint64
}

var policyRules = map[PolicyPreset][]rule{
	PolicyRaw:    {},
	PolicyTxt:    {{filter: FilterNonPrintable, transform: TransformHexEncode}},
	PolicyStrip:  {{filter: FilterNonPrintable, transform: TransformStrip}},
	PolicyEscape: {{filter: FilterControl, transform: TransformJSONEscape}},
}

// filterOrder fixes evaluation order of the filter flags
var filterOrder = []uint64{FilterControl, FilterNonPrintable}

var filterCheckers = map[uint64]func(rune) bool{
	FilterNonPrintable: func(r rune) bool { return r != '\n' && r != '\t' && !strconv.IsPrint(r) },
	FilterControl:      unicode.IsControl,
}

// FormatSpec rewrites every "%t" in format to "%f", scanning left to right in a single pass.
// When a rewrite is needed the format is first capped at MaxFormatSize bytes.
// Replacement text is never rescanned, so the rewrite always terminates.
func FormatSpec(format string) string {
	if !strings.Contains(format, "%t") {
		return format
	}
	if len(format) > MaxFormatSize {
		format = format[:MaxFormatSize]
	}

	buf := make([]byte, 0, len(format))
	for i := 0; i < len(format); i++ {
		if format[i] == '%' && i+1 < len(format) && format[i+1] == 't' {
			buf = append(buf, '%', 'f')
			i++
			continue
		}
		buf = append(buf, format[i])
	}
	return string(buf)
}

// ValidPolicy reports whether name is a known policy preset
func ValidPolicy(name string) bool {
	_, ok := policyRules[PolicyPreset(name)]
	return ok
}

// Sanitizer provides chainable text sanitization. Not safe for concurrent use.
type Sanitizer struct {
	rules []rule
	buf   []byte
}

// New creates a passthrough Sanitizer
func New() *Sanitizer {
	return &Sanitizer{
		rules: []rule{},
		buf:   make([]byte, 0, 256),
	}
}

// Rule adds a custom rule, earliest rule applies first
func (s *Sanitizer) Rule(filter uint64, transform uint64) *Sanitizer {
	s.rules = append(s.rules, rule{filter: filter, transform: transform})
	return s
}

// Policy appends the rules of a preset, unknown presets are ignored
func (s *Sanitizer) Policy(preset PolicyPreset) *Sanitizer {
	if rules, ok := policyRules[preset]; ok {
		s.rules = append(s.rules, rules...)
	}
	return s
}

// Passthrough reports whether the sanitizer has no rules
func (s *Sanitizer) Passthrough() bool {
	return len(s.rules) == 0
}

// Sanitize applies all configured rules to data
func (s *Sanitizer) Sanitize(data string) string {
	if len(s.rules) == 0 {
		return data
	}
	s.buf = s.buf[:0]

	for _, r := range data {
		matched := false
		for _, rl := range s.rules {
			if matchesFilter(r, rl.filter) {
				applyTransform(&s.buf, r, rl.transform)
				matched = true
				break
			}
		}
		if !matched {
			s.buf = utf8.AppendRune(s.buf, r)
		}
	}

	return string(s.buf)
}

// matchesFilter checks if a rune matches any filter in the mask
func matchesFilter(r rune, filterMask uint64) bool {
	for _, flag := range filterOrder {
		if filterMask&flag != 0 && filterCheckers[flag](r) {
			return true
		}
	}
	return false
}

// applyTransform applies the specified transform to the buffer
func applyTransform(buf *[]byte, r rune, transformMask uint64) {
	switch {
	case transformMask&TransformStrip != 0:
		// Drop

	case transformMask&TransformHexEncode != 0:
		var runeBytes [utf8.UTFMax]byte
		n := utf8.EncodeRune(runeBytes[:], r)
		*buf = append(*buf, '<')
		*buf = hex.AppendEncode(*buf, runeBytes[:n])
		*buf = append(*buf, '>')

	case transformMask&TransformJSONEscape != 0:
		switch r {
		case '\n':
			*buf = append(*buf, '\\', 'n')
		case '\r':
			*buf = append(*buf, '\\', 'r')
		case '\t':
			*buf = append(*buf, '\\', 't')
		case '\b':
			*buf = append(*buf, '\\', 'b')
		case '\f':
			*buf = append(*buf, '\\', 'f')
		default:
			*buf = append(*buf, fmt.Sprintf("\\u%04x", r)...)
		}

	default:
		*buf = utf8.AppendRune(*buf, r)
	}
}
