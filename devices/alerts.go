//go:build !noalerts

package devices

import (
	"owslave/core"
	"owslave/protocol"
)

// Alert capabilities for every compiled-in class. This file is absent
// from a `noalerts` build, together with everything alert-shaped in the
// core package.

var (
	_ core.AlertReporter = (*Config)(nil)
	_ core.AlertReporter = (*Console)(nil)
	_ core.AlertReporter = (*Port)(nil)
	_ core.AlertReporter = (*Temp)(nil)
)

// The config class never has anything to report.
func (c *Config) AlertCheck() bool { return false }

func (c *Config) AlertFill(buf *protocol.MsgBuffer) {}

// Console alerts while output is waiting to be drained; the payload is
// the pending byte count.
func (c *Console) AlertCheck() bool { return c.out.Available() > 0 }

func (c *Console) AlertFill(buf *protocol.MsgBuffer) {
	n := c.out.Available()
	if n > 255 {
		n = 255
	}
	_ = buf.Fill([]byte{byte(n)})
}

// Port alerts on any unacknowledged level change; the payload is the
// change bitmap, low byte first.
func (p *Port) AlertCheck() bool { return p.changed != 0 }

func (p *Port) AlertFill(buf *protocol.MsgBuffer) {
	n := (int(p.count) + 7) / 8
	mask := make([]byte, n)
	for i := range mask {
		mask[i] = byte(p.changed >> (8 * i))
	}
	_ = buf.Fill(mask)
}

// Temp alerts when a fresh sample has crossed the armed threshold; the
// payload mirrors Read.
func (t *Temp) AlertCheck() bool {
	return t.fresh && t.hasThreshold && t.last >= t.threshold
}

func (t *Temp) AlertFill(buf *protocol.MsgBuffer) {
	t.Read(0, buf)
}
