// FILE: lixenwraith/sectlog/override.go
package sectlog

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyOverride applies "key=value" overrides to the configuration in place.
// All overrides are attempted; errors are collected and returned together.
//
// Example:
//
//	cfg := sectlog.DefaultConfig()
//	err := cfg.ApplyOverride(
//	    "log_file=/var/log/app.log",
//	    "warn_file=/var/log/app.log",
//	    "show_info=time|elapsed",
//	)
func (c *Config) ApplyOverride(overrides ...string) error {
	var errors []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errors = append(errors, err)
			continue
		}

		if err := applyConfigField(c, key, value); err != nil {
			errors = append(errors, err)
		}
	}

	return combineConfigErrors(errors)
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errors []error) error {
	if len(errors) == 0 {
		return nil
	}
	if len(errors) == 1 {
		return errors[0]
	}

	var sb strings.Builder
	sb.WriteString("sectlog: multiple configuration errors:")
	for i, err := range errors {
		errMsg := strings.TrimPrefix(err.Error(), "sectlog: ")
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, errMsg))
	}
	return fmt.Errorf("%s", sb.String())
}

// applyConfigField applies a single key-value override to a Config.
func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	// Channels
	case "log_file":
		cfg.LogFile = value
	case "warn_file":
		cfg.WarnFile = value
	case "error_file":
		cfg.ErrorFile = value
	case "open_mode":
		cfg.OpenMode = value

	// Title
	case "show_info":
		bits, err := ParseShowInfo(value)
		if err != nil {
			return fmtErrorf("invalid show_info value '%s': %w", value, err)
		}
		cfg.ShowInfo = bits
	case "title_template":
		cfg.TitleTemplate = value

	// Console echo
	case "echo_console":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for echo_console '%s': %w", value, err)
		}
		cfg.EchoConsole = boolVal
	case "console_target":
		cfg.ConsoleTarget = value
	case "console_color":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for console_color '%s': %w", value, err)
		}
		cfg.ConsoleColor = boolVal

	case "sanitization":
		cfg.Sanitization = value

	case "banner":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for banner '%s': %w", value, err)
		}
		cfg.Banner = boolVal

	// Internal error handling
	case "internal_errors_to_stderr":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for internal_errors_to_stderr '%s': %w", value, err)
		}
		cfg.InternalErrorsToStderr = boolVal

	default:
		return fmtErrorf("unknown configuration key '%s'", key)
	}

	return nil
}
