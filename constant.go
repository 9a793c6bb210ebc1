// FILE: lixenwraith/sectlog/constant.go
package sectlog

import "strconv"

// Severity selects the emit entry point and the channel a line is routed to
type Severity int64

// Severity constants
const (
	SeverityInfo Severity = iota
	SeverityLog
	SeverityWarn
	SeverityError
)

// Title flags for the show_info bitmask
const (
	ShowDate    int64 = 0b001 // Calendar date before every message
	ShowTime    int64 = 0b010 // Time of day before every message
	ShowElapsed int64 = 0b100 // Time of day before the first message, elapsed seconds after
	ShowAll           = ShowDate | ShowTime | ShowElapsed
)

// Severity tags appended after the title
const (
	tagInfo  = "|INFO> "
	tagLog   = ""
	tagWarn  = "|WARNING> "
	tagError = "|ERROR> "
)

// Section markers
const (
	markerSectionBegin = "SectionBegin "
	markerSectionEnd   = "SectionEnd "
)

// Formatting
const (
	// Cap for a single rendered message and for the rewritten format string
	maxMessageSize = 1024
	dateLayout     = "2006/01/02 "
	timeLayout     = "15:04:05 "
	elapsedFormat  = "%8.2f "
)

// OpenMode controls how file channels are opened
type OpenMode string

const (
	OpenAppend   OpenMode = "append"
	OpenTruncate OpenMode = "truncate"
)

// String returns the upper-case severity name
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityLog:
		return "LOG"
	case SeverityWarn:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "SEVERITY(" + strconv.FormatInt(int64(s), 10) + ")"
	}
}

// Tag returns the literal tag rendered after the title
func (s Severity) Tag() string {
	switch s {
	case SeverityInfo:
		return tagInfo
	case SeverityWarn:
		return tagWarn
	case SeverityError:
		return tagError
	default:
		return tagLog
	}
}

// valid reports whether s is one of the four emit entry points
func (s Severity) valid() bool {
	return s >= SeverityInfo && s <= SeverityError
}
