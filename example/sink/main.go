// FILE: main.go
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lixenwraith/sectlog"
)

const logDirectory = "./temp_logs"

// main orchestrates the different channel binding scenarios.
func main() {
	// Ensure a clean state by removing the previous log directory.
	if err := os.RemoveAll(logDirectory); err != nil {
		fmt.Printf("Warning: could not remove old log directory: %v\n", err)
	}
	if err := os.MkdirAll(logDirectory, 0755); err != nil {
		fmt.Printf("Fatal: could not create log directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("--- Running Channel Binding Suite ---")
	fmt.Printf("! All file-based logs will be in the '%s' directory.\n\n", logDirectory)

	testSeparateFiles()
	testSharedFile()
	testStandardStreams()
	testNoOutput()
	testClones()

	fmt.Println("\n--- Channel Binding Suite Complete ---")
	fmt.Printf("Check the '%s' directory for log files.\n", logDirectory)
}

func logPath(name string) string {
	return filepath.Join(logDirectory, name)
}

// testSeparateFiles binds every channel to its own file, three banners are written.
func testSeparateFiles() {
	sink := sectlog.NewAllFilesSink(logPath("log.log"), logPath("warn.log"), logPath("error.log"),
		sectlog.OpenTruncate, sectlog.WithLifecycle(sectlog.BannerLifecycle{Name: "separate"}))
	runTestPhase(sink, "1: Separate files")
}

// testSharedFile binds all channels to one file through different spellings of the same path.
func testSharedFile() {
	sink := sectlog.NewAllFilesSink(logPath("all.log"), logDirectory+"/./all.log", logPath("sub/../all.log"),
		sectlog.OpenTruncate, sectlog.WithLifecycle(sectlog.BannerLifecycle{Name: "shared"}))
	runTestPhase(sink, "2: Shared file (one banner)")
}

// testStandardStreams routes log lines to stdout and problems to stderr.
func testStandardStreams() {
	fmt.Fprintln(os.Stderr, "\n---") // Separator for stderr output
	sink := sectlog.NewWriterSink(os.Stdout, os.Stderr, os.Stderr,
		sectlog.WithShowInfo(sectlog.ShowTime),
		sectlog.WithLifecycle(sectlog.BannerLifecycle{Name: "streams"}))
	runTestPhase(sink, "3: Stdout and stderr")
	fmt.Fprintln(os.Stderr, "---") // Separator for stderr output
}

// testNoOutput disables every channel, counters still advance.
func testNoOutput() {
	sink := sectlog.NewStdSink(sectlog.Disabled(), sectlog.ToFile(""), sectlog.ToWriter(nil))
	runTestPhase(sink, "4: No output (lines are dropped)")
}

// testClones shares one file between a sink and its clones.
func testClones() {
	root := sectlog.NewFileSink(logPath("clones.log"), nil, os.Stderr, sectlog.OpenTruncate)
	for i := 0; i < 3; i++ {
		clone := root.Clone()
		clone.Log(sectlog.WithSectionIndex("clone", uint(i))).
			SectionBegin("writing").
			SectionEnd("closed").
			Close()
		shutdownSink(clone, fmt.Sprintf("5.%d: Clone", i))
	}
	root.Info().Append("root still open after clones closed").Close()
	shutdownSink(root, "5: Clones")
}

func runTestPhase(sink *sectlog.StdSink, phaseName string) {
	fmt.Printf("\n--- Phase %s (%d destination(s)) ---\n", phaseName, sink.Distinctness().Count())

	sink.Info().Printf("phase %s started", phaseName).Close()
	sink.Log().Append("plain line for ", phaseName).Close()
	sink.Warn().Append("warning line").Close()

	s := sink.Error(sectlog.WithSection("phase"))
	s.SectionBegin("%s", phaseName)
	s.SectionEnd("error line")
	s.Close()

	shutdownSink(sink, phaseName)
}

func shutdownSink(sink *sectlog.StdSink, phaseName string) {
	warnings, errors := sink.Warnings(), sink.Errors()
	if err := sink.Close(); err != nil {
		fmt.Printf("ERROR: Failed to close sink for phase '%s': %v\n", phaseName, err)
		return
	}
	fmt.Printf("Phase '%s' closed: %d warning(s), %d error(s).\n", phaseName, warnings, errors)
}
