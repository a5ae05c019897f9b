package devices

import (
	"owslave/core"
	"owslave/protocol"
)

// maxPortPins bounds the pin bitmap. Drivers reporting more lines are
// truncated to this many.
const maxPortPins = 32

// PinDriver abstracts the digital I/O lines behind the port class.
// Host builds use SimPins; targets supply a machine-backed driver.
type PinDriver interface {
	Count() int
	Get(pin uint8) bool
	Set(pin uint8, level bool)
}

// Port is the digital I/O class: one channel per pin. Reads return the
// current level, writes drive it. Poll latches level changes for the
// alert subsystem; ReadDone clears the latch for the acknowledged pin.
type Port struct {
	drv     PinDriver
	count   uint8
	last    uint32
	changed uint32
}

func NewPort(drv PinDriver) *Port {
	n := drv.Count()
	if n > maxPortPins {
		n = maxPortPins
	}
	return &Port{drv: drv, count: uint8(n)}
}

func (p *Port) Init() {
	p.last = p.snapshot()
	p.changed = 0
}

func (p *Port) Poll() {
	cur := p.snapshot()
	p.changed |= cur ^ p.last
	p.last = cur
}

func (p *Port) snapshot() uint32 {
	var levels uint32
	for pin := uint8(0); pin < p.count; pin++ {
		if p.drv.Get(pin) {
			levels |= 1 << pin
		}
	}
	return levels
}

func (p *Port) ReadLen(ch uint8) uint8 { return 1 }

func (p *Port) Read(ch uint8, buf *protocol.MsgBuffer) {
	// An out-of-range channel reads as low; range enforcement for reads
	// belongs to the dispatcher's caller.
	var level byte
	if ch < p.count && p.drv.Get(ch) {
		level = 1
	}
	_ = buf.Fill([]byte{level})
}

func (p *Port) ReadDone(ch uint8) {
	if ch < p.count {
		p.changed &^= 1 << ch
	}
}

func (p *Port) WriteCheck(ch uint8, data []byte) error {
	if ch >= p.count {
		return core.ErrChannel
	}
	if len(data) != 1 {
		return core.ErrLength
	}
	if data[0] > 1 {
		return core.ErrValue
	}
	return nil
}

func (p *Port) Write(ch uint8, data []byte) {
	p.drv.Set(ch, data[0] != 0)
}

// SimPins is an in-memory pin driver for host builds and tests.
type SimPins struct {
	levels []bool
}

func NewSimPins(n int) *SimPins {
	return &SimPins{levels: make([]bool, n)}
}

func (s *SimPins) Count() int { return len(s.levels) }

func (s *SimPins) Get(pin uint8) bool {
	return int(pin) < len(s.levels) && s.levels[pin]
}

func (s *SimPins) Set(pin uint8, level bool) {
	if int(pin) < len(s.levels) {
		s.levels[pin] = level
	}
}
