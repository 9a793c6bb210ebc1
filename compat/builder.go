package compat

import (
	"fmt"

	"github.com/lixenwraith/sectlog"
)

// Builder provides a flexible way to create configured sink adapters for gnet and fasthttp
// It can use an existing sectlog.Sink or create a new StdSink from a *sectlog.Config
type Builder struct {
	sink   sectlog.Sink
	owned  *sectlog.StdSink // Created by the builder, closed by Close
	logCfg *sectlog.Config
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithSink specifies an existing sink to use for the adapters
// Recommended for applications that already have a central sink
// If this is set WithConfig is ignored
func (b *Builder) WithSink(s sectlog.Sink) *Builder {
	if s == nil {
		b.err = fmt.Errorf("sectlog/compat: provided sink cannot be nil")
		return b
	}
	b.sink = s
	return b
}

// WithConfig provides a configuration for a new sink
// This is used only if an existing sink is NOT provided via WithSink
// If neither WithSink nor WithConfig is used, the package default sink is used
func (b *Builder) WithConfig(cfg *sectlog.Config) *Builder {
	b.logCfg = cfg
	return b
}

// getSink resolves the sink to be used, creating one if necessary
func (b *Builder) getSink() (sectlog.Sink, error) {
	if b.err != nil {
		return nil, b.err
	}

	// An existing sink was provided, so we use it
	if b.sink != nil {
		return b.sink, nil
	}

	if b.logCfg == nil {
		return sectlog.Default(), nil
	}

	s, err := sectlog.NewSinkFromConfig(b.logCfg)
	if err != nil {
		return nil, err
	}

	// Cache the newly created sink for subsequent builds with this builder
	b.sink = s
	b.owned = s
	return s, nil
}

// BuildGnet creates a gnet adapter
// It can be used for servers that require a standard gnet logger
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	s, err := b.getSink()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(s, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	s, err := b.getSink()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(s, opts...), nil
}

// GetSink returns the underlying sink
// If a sink has not been provided or created yet, it will be resolved
func (b *Builder) GetSink() (sectlog.Sink, error) {
	return b.getSink()
}

// Close closes a sink the builder created from a config, provided sinks are left open
func (b *Builder) Close() error {
	if b.owned == nil {
		return nil
	}
	err := b.owned.Close()
	b.owned = nil
	return err
}

// --- Example Usage ---
//
// The following demonstrates how to integrate sectlog with gnet and fasthttp
// using a single, shared sink
//
//	// 1. Create the application's main sink
//	appSink, err := sectlog.NewBuilder().
//		LogFile("/var/log/app.log").
//		WarnFile("/var/log/app.log").
//		ErrorWriter(os.Stderr).
//		Build()
//	if err != nil { /* handle error */ }
//	defer appSink.Close()
//
//	// 2. Create a builder and provide the existing sink
//	builder := compat.NewBuilder().WithSink(appSink)
//
//	// 3. Build the required adapters
//	gnetLogger, err := builder.BuildGnet()
//	if err != nil { /* handle error */ }
//
//	fasthttpLogger, err := builder.BuildFastHTTP()
//	if err != nil { /* handle error */ }
//
//	// 4. Configure your servers with the adapters
//
//	// For gnet:
//	var events gnet.EventHandler // your-event-handler
//	go gnet.Run(events, "tcp://:9000", gnet.WithLogger(gnetLogger))
//
//	// For fasthttp:
//	server := &fasthttp.Server{
//		Handler: func(ctx *fasthttp.RequestCtx) {
//			ctx.WriteString("Hello, world!")
//		},
//		Logger: fasthttpLogger,
//	}
//	go server.ListenAndServe(":8080")
