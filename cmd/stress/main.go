package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/lixenwraith/sectlog"
)

const (
	totalBursts    = 100
	logsPerBurst   = 500
	maxMessageSize = 4000 // Beyond the per-message cap to exercise truncation
	numWorkers     = 64
)

const logsDir = "./stress_logs"

var severities = []sectlog.Severity{
	sectlog.SeverityInfo,
	sectlog.SeverityLog,
	sectlog.SeverityWarn,
	sectlog.SeverityError,
}

func generateRandomMessage(size int) string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 "
	var sb strings.Builder
	sb.Grow(size)
	for i := 0; i < size; i++ {
		sb.WriteByte(chars[rand.Intn(len(chars))])
	}
	return sb.String()
}

// logBurst simulates a burst of logging activity on one clone
func logBurst(sink *sectlog.StdSink, burstID int) {
	for i := 0; i < logsPerBurst; i++ {
		sev := severities[rand.Intn(len(severities))]
		msg := generateRandomMessage(rand.Intn(maxMessageSize) + 10)

		s := sink.Stream(sev, sectlog.WithSectionIndex("burst", uint(burstID)))
		s.SectionBegin("seq=%d ", i)
		s.Call(sectlog.NewCorrelationID(), "%s", msg)
		// Roughly one in ten sections is abandoned and discarded
		if rand.Intn(10) != 0 {
			s.SectionEnd("rnd=%d", rand.Int63())
		}
		s.Close()
	}
}

// worker goroutine function, each worker owns a clone sharing the root's files
func worker(root *sectlog.StdSink, burstChan chan int, wg *sync.WaitGroup, completedBursts *atomic.Int64,
	warnings, errors *atomic.Uint64) {
	defer wg.Done()
	sink := root.Clone()
	defer func() {
		warnings.Add(sink.Warnings())
		errors.Add(sink.Errors())
		sink.Close()
	}()

	for burstID := range burstChan {
		logBurst(sink, burstID)
		completed := completedBursts.Add(1)
		if completed%10 == 0 || completed == totalBursts {
			fmt.Printf("\rProgress: %d/%d bursts completed", completed, totalBursts)
		}
	}
}

func main() {
	fmt.Println("--- Sink Stress Test ---")

	_ = os.RemoveAll(logsDir)
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		os.Exit(1)
	}

	root, err := sectlog.NewBuilder().
		LogFile(logsDir + "/stress.log").
		WarnFile(logsDir + "/stress.log").
		ErrorFile(logsDir + "/errors.log").
		OpenMode(sectlog.OpenTruncate).
		ShowInfo(sectlog.ShowAll).
		Banner(true).
		InternalErrorsToStderr(true).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize sink: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Sink initialized. Logs will be written to: %s\n", logsDir)

	fmt.Printf("Starting stress test: %d workers, %d bursts, %d logs/burst.\n",
		numWorkers, totalBursts, logsPerBurst)
	fmt.Println("Press Ctrl+C to stop early.")

	// --- Setup Workers and Signal Handling ---
	burstChan := make(chan int, numWorkers)
	var wg sync.WaitGroup
	completedBursts := atomic.Int64{}
	var warnings, errors atomic.Uint64
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	stopChan := make(chan struct{})

	go func() {
		<-sigChan
		fmt.Println("\n[Signal Received] Stopping burst generation...")
		close(stopChan)
	}()

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go worker(root, burstChan, &wg, &completedBursts, &warnings, &errors)
	}

	// --- Run Test ---
	startTime := time.Now()
	for i := 1; i <= totalBursts; i++ {
		select {
		case burstChan <- i:
		case <-stopChan:
			fmt.Println("[Signal Received] Halting burst submission.")
			goto endLoop
		}
	}
endLoop:
	close(burstChan)

	fmt.Println("\nWaiting for workers to finish...")
	wg.Wait()
	duration := time.Since(startTime)
	finalCompleted := completedBursts.Load()

	fmt.Printf("\n--- Test Finished ---")
	fmt.Printf("\nCompleted %d/%d bursts in %v\n", finalCompleted, totalBursts, duration.Round(time.Millisecond))
	if finalCompleted > 0 && duration.Seconds() > 0 {
		logsPerSec := float64(finalCompleted*logsPerBurst) / duration.Seconds()
		fmt.Printf("Approximate Streams/sec: %.2f\n", logsPerSec)
	}
	fmt.Printf("Warnings: %d, Errors: %d\n", warnings.Load(), errors.Load())

	// --- Shutdown Sink ---
	if err := root.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Sink close error: %v\n", err)
	} else {
		fmt.Println("Sink closed.")
	}

	fmt.Printf("Check log files in '%s'.\n", logsDir)
}
