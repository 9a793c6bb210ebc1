// FILE: lixenwraith/sectlog/interface.go
package sectlog

//go:generate mockgen -source=interface.go -destination=mocks/mock_interface.go -package=mocks

// Sink is a destination for finished log lines.
// Emit must not return errors or panic; a failing destination drops the line.
type Sink interface {
	// Emit renders msg for the given severity and forwards it to the bound destination.
	// id is the correlation id of the stream that produced msg, empty if none.
	Emit(sev Severity, msg string, id string)
}

// Lifecycle receives start and finish notifications from a StdSink.
// The distinctness flags let an implementation print one banner per physical destination
// instead of one per channel when channels share a destination.
type Lifecycle interface {
	// OnLogStart is called once the channels of sink are resolved.
	OnLogStart(sink *StdSink, d Distinctness)
	// OnLogFinish is called when sink is closed, before its channels are released.
	OnLogFinish(sink *StdSink, d Distinctness)
}
