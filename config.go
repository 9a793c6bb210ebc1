// FILE: lixenwraith/sectlog/config.go
package sectlog

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lixenwraith/config"
	"github.com/pelletier/go-toml/v2"
	"github.com/valyala/fasttemplate"

	"github.com/lixenwraith/sectlog/sanitizer"
)

// Config holds all sink configuration values
type Config struct {
	// Channels, empty path disables the channel
	LogFile   string `toml:"log_file"`
	WarnFile  string `toml:"warn_file"`
	ErrorFile string `toml:"error_file"`
	OpenMode  string `toml:"open_mode" validate:"oneof=append truncate"`

	// Title
	ShowInfo      int64  `toml:"show_info" validate:"min=0,max=7"` // ShowDate | ShowTime | ShowElapsed
	TitleTemplate string `toml:"title_template"`                   // Replaces show_info when set

	// Console echo
	EchoConsole   bool   `toml:"echo_console"`
	ConsoleTarget string `toml:"console_target" validate:"oneof=stdout stderr"`
	ConsoleColor  bool   `toml:"console_color"`

	// Message body policy: raw, txt, strip or escape
	Sanitization string `toml:"sanitization" validate:"policy"`

	// Print start/finish banners once per distinct channel
	Banner bool `toml:"banner"`

	// Internal error handling
	InternalErrorsToStderr bool `toml:"internal_errors_to_stderr"`
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	LogFile:   "",
	WarnFile:  "",
	ErrorFile: "",
	OpenMode:  string(OpenAppend),

	ShowInfo:      0,
	TitleTemplate: "",

	EchoConsole:   false,
	ConsoleTarget: "stdout",
	ConsoleColor:  false,

	Sanitization: string(sanitizer.PolicyRaw),

	Banner: false,

	InternalErrorsToStderr: false,
}

// configPrefix is the table holding sink settings in config files
const configPrefix = "log."

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("policy", func(fl validator.FieldLevel) bool {
		return sanitizer.ValidPolicy(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	// Report field names by their toml key
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// NewConfigFromFile loads configuration from the [log] table of a TOML file and returns a validated Config
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	loader := config.New()

	if err := loader.RegisterStruct(configPrefix, *cfg); err != nil {
		return nil, fmtErrorf("failed to register config struct: %w", err)
	}

	// Missing file falls back to defaults
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmtErrorf("failed to load config from %s: %w", path, err)
	}

	if err := extractConfig(loader, configPrefix, cfg); err != nil {
		return nil, fmtErrorf("failed to extract config values: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewConfigFromOverrides creates a Config with default values and applies "key=value" overrides
func NewConfigFromOverrides(overrides ...string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.ApplyOverride(overrides...); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes the configuration as a [log] table to path
func (c *Config) SaveConfig(path string) error {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	doc := struct {
		Log *Config `toml:"log"`
	}{Log: c}

	if err := enc.Encode(doc); err != nil {
		return fmtErrorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmtErrorf("failed to write config to %s: %w", path, err)
	}
	return nil
}

// extractConfig extracts values from lixenwraith/config into our Config struct
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		val, found := loader.Get(prefix + tomlTag)
		if !found {
			continue // Use default value
		}

		if err := setFieldValue(fieldValue, val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		case string:
			// show_info may be written as flag names
			bits, err := ParseShowInfo(v)
			if err != nil {
				return err
			}
			field.SetInt(bits)
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmtErrorf("invalid %s: '%v' (%s)", fe.Field(), fe.Value(), validationMessage(fe))
		}
		return fmtErrorf("invalid configuration: %w", err)
	}

	if c.TitleTemplate != "" {
		if _, err := fasttemplate.NewTemplate(c.TitleTemplate, templateStart, templateEnd); err != nil {
			return fmtErrorf("invalid title_template: %w", err)
		}
	}

	return nil
}

// validationMessage returns a human-readable message for a validation error
func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "min":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "max":
		return fmt.Sprintf("must be <= %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "policy":
		return "must be one of: raw txt strip escape"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}
