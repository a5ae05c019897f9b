package devices

import (
	"io"

	"owslave/core"
	"owslave/protocol"
)

// consoleBufSize is the depth of each console direction.
const consoleBufSize = 64

// Console is the byte console class. Firmware code prints into it
// through the io.Writer returned by Output; the master drains that
// output with reads and queues command input with writes.
//
// A read cycle latches the pending byte count at ReadLen and consumes
// it only at ReadDone, so an abandoned read loses nothing.
type Console struct {
	out     *protocol.Fifo // slave -> master
	in      *protocol.Fifo // master -> slave
	pending int
}

func NewConsole() *Console {
	return &Console{
		out: protocol.NewFifo(consoleBufSize),
		in:  protocol.NewFifo(consoleBufSize),
	}
}

// Output returns the writer application code prints into. The console
// is lossy on overflow: the oldest queued output is dropped to make
// room for new data.
func (c *Console) Output() io.Writer { return consoleWriter{c} }

type consoleWriter struct{ c *Console }

func (w consoleWriter) Write(p []byte) (int, error) {
	if excess := len(p) - w.c.out.Free(); excess > 0 {
		w.c.out.Pop(excess)
	}
	w.c.out.Write(p)
	return len(p), nil
}

// ReadInput drains queued master input for the application.
func (c *Console) ReadInput(p []byte) int {
	return c.in.Read(p)
}

func (c *Console) Init() {
	c.out.Reset()
	c.in.Reset()
	c.pending = 0
}

func (c *Console) Poll() {}

func (c *Console) ReadLen(ch uint8) uint8 {
	n := c.out.Available()
	if n > protocol.MaxMessage {
		n = protocol.MaxMessage
	}
	c.pending = n
	return uint8(n)
}

func (c *Console) Read(ch uint8, buf *protocol.MsgBuffer) {
	_ = buf.SetLen(c.pending)
	c.out.Peek(buf.Bytes())
}

func (c *Console) ReadDone(ch uint8) {
	c.out.Pop(c.pending)
	c.pending = 0
}

func (c *Console) WriteCheck(ch uint8, data []byte) error {
	if len(data) == 0 {
		return core.ErrLength
	}
	if len(data) > c.in.Free() {
		return core.ErrLength
	}
	return nil
}

func (c *Console) Write(ch uint8, data []byte) {
	c.in.Write(data)
}
