// FILE: example/gnet/main.go
package main

import (
	"os"

	"github.com/panjf2000/gnet/v2"

	"github.com/lixenwraith/sectlog"
	"github.com/lixenwraith/sectlog/compat"
)

// Example gnet event handler, each connection's traffic is logged as one section
type echoServer struct {
	gnet.BuiltinEventEngine
	sink *sectlog.StdSink
}

func (es *echoServer) OnOpen(c gnet.Conn) ([]byte, gnet.Action) {
	es.sink.Info().Printf("accepted %s", c.RemoteAddr()).Close()
	return nil, gnet.None
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	s := es.sink.Log(sectlog.WithSection("echo"), sectlog.WithID(c.RemoteAddr().String()))
	defer s.Close()

	s.SectionBegin("")
	buf, err := c.Next(-1)
	if err != nil {
		// Leaving the section open discards the partial line
		es.sink.Error().Printf("read failed: %v", err).Close()
		return gnet.Close
	}
	n, _ := c.Write(buf)
	s.SectionEnd("%d bytes", n)
	return gnet.None
}

func main() {
	sink, err := sectlog.NewBuilder().
		LogFile("/var/log/gnet/echo.log").
		WarnFile("/var/log/gnet/echo.log").
		ErrorWriter(os.Stderr).
		ShowInfoString("date|time").
		Banner(true).
		Build()
	if err != nil {
		panic(err)
	}
	defer sink.Close()

	gnetAdapter, err := compat.NewBuilder().WithSink(sink).BuildGnet()
	if err != nil {
		panic(err)
	}

	// Configure gnet server with the adapter
	err = gnet.Run(
		&echoServer{sink: sink},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(gnetAdapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		panic(err)
	}
}
