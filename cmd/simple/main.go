package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/lixenwraith/sectlog"
)

const configFile = "simple_config.toml"

// Example TOML content
var tomlContent = `
# Example simple_config.toml
[log]
  log_file = "./simple.log"
  warn_file = "./simple.log"
  error_file = "./simple_errors.log"
  open_mode = "truncate"
  show_info = 6 # time | elapsed
  echo_console = true
  console_color = true
  banner = true
`

func main() {
	fmt.Println("--- Simple Sink Example ---")

	// --- Setup Config ---
	err := os.WriteFile(configFile, []byte(tomlContent), 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write dummy config: %v\n", err)
		// Continue with defaults
	} else {
		fmt.Printf("Created dummy config file: %s\n", configFile)
	}

	cfg, err := sectlog.NewConfigFromFile(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v. Using defaults.\n", err)
		cfg = sectlog.DefaultConfig()
	}

	// Command-line style overrides win over the file
	if err := cfg.ApplyOverride(os.Args[1:]...); err != nil {
		fmt.Fprintf(os.Stderr, "Ignoring overrides: %v\n", err)
	}

	// --- Initialize Sink ---
	sink, err := sectlog.NewSinkFromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize sink: %v\n", err)
		os.Exit(1)
	}
	prev := sectlog.SetDefault(sink)
	fmt.Printf("Sink initialized, %d destination(s).\n", sink.Distinctness().Count())

	// --- Save Configuration ---
	// Writes the merged configuration (defaults + file + overrides) back
	if err := cfg.SaveConfig(configFile); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save configuration to '%s': %v\n", configFile, err)
	} else {
		fmt.Printf("Configuration saved to: %s\n", configFile)
	}

	// --- Logging ---
	sectlog.Log().Append("plain line, no tag").Close()
	sectlog.Info().Append("Application starting...").Close()
	sectlog.Warn().Printf("Potential issue detected, threshold=%.2f", 0.95).Close()

	load := sectlog.Section(sectlog.SeverityInfo, "load")
	load.SectionBegin("reading %s", configFile)
	time.Sleep(20 * time.Millisecond)
	load.SectionEnd("done")
	load.Close()

	// An abandoned section never reaches the sink
	abandoned := sectlog.Section(sectlog.SeverityError, "abandoned")
	abandoned.SectionBegin("this line is discarded")
	abandoned.Close()

	// Streams from goroutines, each with its own correlation id
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			format := "goroutine %d finished in %t s"
			start := time.Now()
			time.Sleep(time.Duration(50+id*50) * time.Millisecond)
			sectlog.Info().Call(sectlog.NewCorrelationID(), format, id, time.Since(start).Seconds()).Close()
		}(i)
	}
	wg.Wait()
	fmt.Println("Goroutines finished.")

	// --- Shutdown Sink ---
	fmt.Println("Closing sink...")
	sectlog.SetDefault(prev)
	if err := sink.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Sink close error: %v\n", err)
	} else {
		fmt.Printf("Sink closed: %d warning(s), %d error(s).\n", sink.Warnings(), sink.Errors())
	}

	fmt.Println("--- Example Finished ---")
	fmt.Printf("Check './simple.log', './simple_errors.log' and the saved config '%s'.\n", configFile)
}
