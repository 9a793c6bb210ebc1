// FILE: lixenwraith/sectlog/multi.go
package sectlog

// Discard drops every line
var Discard Sink = discardSink{}

type discardSink struct{}

func (discardSink) Emit(Severity, string, string) {}

type teeSink []Sink

// Tee returns a sink forwarding every emit to each of sinks in order; nil sinks are skipped
func Tee(sinks ...Sink) Sink {
	t := make(teeSink, 0, len(sinks))
	for _, s := range sinks {
		if !isNilSink(s) {
			t = append(t, s)
		}
	}
	return t
}

func (t teeSink) Emit(sev Severity, msg string, id string) {
	for _, s := range t {
		s.Emit(sev, msg, id)
	}
}
