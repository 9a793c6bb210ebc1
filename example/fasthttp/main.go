// FILE: examples/fasthttp/main.go
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/lixenwraith/sectlog"
	"github.com/lixenwraith/sectlog/compat"
	"github.com/lixenwraith/sectlog/httpsink"
)

func main() {
	// Local files for every line
	local, err := sectlog.NewSinkFromConfig(mustConfig(
		"log_file=/var/log/fasthttp/access.log",
		"warn_file=/var/log/fasthttp/access.log",
		"error_file=/var/log/fasthttp/errors.log",
		"show_info=all",
		"sanitization=escape",
	))
	if err != nil {
		panic(err)
	}
	defer local.Close()

	// Errors are also shipped to a collector
	remote, err := httpsink.New("http://127.0.0.1:9880/ingest",
		httpsink.WithTimeout(2*time.Second),
		httpsink.WithErrorHandler(func(err error) {
			local.Warn().Printf("log shipping failed: %v", err).Close()
		}),
	)
	if err != nil {
		panic(err)
	}
	sink := sectlog.Tee(local, errorsOnly{remote})

	// Create fasthttp adapter with custom severity detection
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		sink,
		compat.WithDefaultSeverity(sectlog.SeverityInfo),
		compat.WithSeverityDetector(customSeverityDetector),
	)

	// Configure fasthttp server
	server := &fasthttp.Server{
		Handler: requestHandler(sink),
		Logger:  fasthttpAdapter,

		// Other server settings
		Name:              "MyServer",
		Concurrency:       fasthttp.DefaultConcurrency,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		TCPKeepalive:      true,
		ReduceMemoryUsage: true,
	}

	// Start server
	fmt.Println("Starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}

func mustConfig(overrides ...string) *sectlog.Config {
	cfg, err := sectlog.NewConfigFromOverrides(overrides...)
	if err != nil {
		panic(err)
	}
	return cfg
}

// errorsOnly forwards error lines and drops the rest
type errorsOnly struct {
	next sectlog.Sink
}

func (e errorsOnly) Emit(sev sectlog.Severity, msg string, id string) {
	if sev == sectlog.SeverityError {
		e.next.Emit(sev, msg, id)
	}
}

func requestHandler(sink sectlog.Sink) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		id := string(ctx.Request.Header.Peek(httpsink.HeaderCorrelationID))
		if id == "" {
			id = sectlog.NewCorrelationID()
		}

		_ = sectlog.Scope(sink, sectlog.SeverityInfo, func(s *sectlog.Stream) {
			start := time.Now()
			ctx.SetContentType("text/plain")
			fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())

			format := "%s %s served in %t s"
			s.Call(id, format, ctx.Method(), ctx.Path(), time.Since(start).Seconds())
		})
	}
}

func customSeverityDetector(msg string) (sectlog.Severity, bool) {
	// Specific fasthttp message patterns first
	if strings.Contains(msg, "connection cannot be served") {
		return sectlog.SeverityWarn, true
	}
	if strings.Contains(msg, "error when serving connection") {
		return sectlog.SeverityError, true
	}

	// Use default detection
	return compat.DetectSeverity(msg)
}
