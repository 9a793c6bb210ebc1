package httpsink

import (
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"

	"github.com/lixenwraith/sectlog"
)

type received struct {
	severity string
	id       string
	body     string
}

// collector is an in-memory fasthttp server recording delivered lines
type collector struct {
	mu     sync.Mutex
	lines  []received
	status int
	ln     *fasthttputil.InmemoryListener
}

func startCollector(t *testing.T) *collector {
	t.Helper()
	c := &collector{status: fasthttp.StatusOK, ln: fasthttputil.NewInmemoryListener()}
	server := &fasthttp.Server{Handler: func(ctx *fasthttp.RequestCtx) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.lines = append(c.lines, received{
			severity: string(ctx.Request.Header.Peek(HeaderSeverity)),
			id:       string(ctx.Request.Header.Peek(HeaderCorrelationID)),
			body:     string(ctx.PostBody()),
		})
		ctx.SetStatusCode(c.status)
	}}
	go func() { _ = server.Serve(c.ln) }()
	t.Cleanup(func() { _ = server.Shutdown() })
	return c
}

func (c *collector) client() *fasthttp.Client {
	return &fasthttp.Client{Dial: func(addr string) (net.Conn, error) { return c.ln.Dial() }}
}

func (c *collector) received() []received {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]received(nil), c.lines...)
}

func TestNew(t *testing.T) {
	_, err := New("http://collector.local/ingest")
	assert.NoError(t, err)

	_, err = New("ftp://collector.local/ingest")
	assert.Error(t, err)

	_, err = New("http:///ingest")
	assert.Error(t, err)
}

func TestEmitDelivers(t *testing.T) {
	c := startCollector(t)
	s, err := New("http://collector.local/ingest", WithClient(c.client()), WithTimeout(time.Second))
	require.NoError(t, err)

	s.Emit(sectlog.SeverityLog, "plain", "")
	s.Emit(sectlog.SeverityWarn, "careful", "req-7")

	got := c.received()
	require.Len(t, got, 2)
	assert.Equal(t, received{severity: "LOG", id: "", body: "plain\n"}, got[0])
	assert.Equal(t, received{severity: "WARNING", id: "req-7", body: "|WARNING> careful\n"}, got[1])
	assert.Equal(t, uint64(2), s.Sent())
	assert.Equal(t, uint64(0), s.Failures())
}

func TestEmitFromStream(t *testing.T) {
	c := startCollector(t)
	s, err := New("http://collector.local/ingest", WithClient(c.client()))
	require.NoError(t, err)

	st, err := sectlog.NewStream(s, sectlog.SeverityError, sectlog.WithSection("load"))
	require.NoError(t, err)
	st.SectionBegin("cfg ").Call("corr-1", "took %t s ", 0.5).SectionEnd("done")
	st.Close()

	got := c.received()
	require.Len(t, got, 1)
	assert.Equal(t, "ERROR", got[0].severity)
	assert.Equal(t, "corr-1", got[0].id)
	assert.Equal(t, "|ERROR> SectionBegin load cfg took 0.500000 s SectionEnd load done\n", got[0].body)
}

func TestEmitCountsFailures(t *testing.T) {
	c := startCollector(t)
	c.mu.Lock()
	c.status = fasthttp.StatusInternalServerError
	c.mu.Unlock()

	var errs []error
	s, err := New("http://collector.local/ingest",
		WithClient(c.client()),
		WithErrorHandler(func(err error) { errs = append(errs, err) }),
	)
	require.NoError(t, err)

	s.Emit(sectlog.SeverityInfo, "rejected", "")
	assert.Equal(t, uint64(1), s.Failures())
	assert.Equal(t, uint64(0), s.Sent())
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "500")

	// Unreachable collector
	require.NoError(t, c.ln.Close())
	s.Emit(sectlog.SeverityInfo, "lost", "")
	assert.Equal(t, uint64(2), s.Failures())
}
