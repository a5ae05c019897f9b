package protocol

import "io"

// Wire is the byte-level bus the slave core talks through. The physical
// signaling behind it (UART, 1-wire line driver, in-memory loopback) is
// supplied by the surrounding system. A Wire call may wait for the master
// to clock the next byte, exactly as the physical bus does; device-class
// operations themselves never block.
type Wire interface {
	SendByte(b byte)
	RecvByte() byte
}

// SendWord transmits a 16-bit value, low byte first.
func SendWord(w Wire, v uint16) {
	w.SendByte(byte(v))
	w.SendByte(byte(v >> 8))
}

// RecvWord receives a 16-bit value, low byte first.
func RecvWord(w Wire) uint16 {
	lo := w.RecvByte()
	hi := w.RecvByte()
	return uint16(lo) | uint16(hi)<<8
}

// Loopback connects a slave endpoint and a master endpoint through two
// in-memory byte channels. It exists for tests and host-side simulation;
// the channel capacity is large enough to script a whole exchange ahead
// of running the dispatcher.
type Loopback struct {
	m2s chan byte
	s2m chan byte
}

// NewLoopback creates a loopback bus.
func NewLoopback() *Loopback {
	return &Loopback{
		m2s: make(chan byte, 4*MaxMessage),
		s2m: make(chan byte, 4*MaxMessage),
	}
}

// Slave returns the wire endpoint the dispatcher drives.
func (l *Loopback) Slave() Wire {
	return endpoint{in: l.m2s, out: l.s2m}
}

// Master returns the wire endpoint the test master drives.
func (l *Loopback) Master() Wire {
	return endpoint{in: l.s2m, out: l.m2s}
}

type endpoint struct {
	in  chan byte
	out chan byte
}

func (e endpoint) SendByte(b byte) { e.out <- b }
func (e endpoint) RecvByte() byte  { return <-e.in }

// StreamWire adapts a byte stream (a serial port, a pipe) to Wire. The
// first stream error is latched in Err; subsequent receives return zero
// bytes so a broken stream cannot be mistaken for a committed exchange.
type StreamWire struct {
	R   io.Reader
	W   io.Writer
	Err error
}

func (s *StreamWire) SendByte(b byte) {
	if s.Err != nil {
		return
	}
	if _, err := s.W.Write([]byte{b}); err != nil {
		s.Err = err
	}
}

func (s *StreamWire) RecvByte() byte {
	if s.Err != nil {
		return 0
	}
	var b [1]byte
	if _, err := io.ReadFull(s.R, b[:]); err != nil {
		s.Err = err
		return 0
	}
	return b[0]
}
