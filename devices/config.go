// Package devices holds the compiled-in device classes and the table
// composition that turns them into the core registry. The class set is
// fixed at build time; BuildRegistry is the only composition point.
package devices

import (
	"owslave/core"
	"owslave/protocol"
)

// Config is device class 0. It exposes the slave's own table layout to
// the master: channel 0 reads the class count and the window capacity,
// channel n (1-based) reads class n-1's maximum transfer size. The
// class is read-only.
type Config struct {
	sizes []uint8
}

// bind installs the per-class size table. BuildRegistry calls it once
// the full table is known.
func (c *Config) bind(sizes []uint8) { c.sizes = sizes }

func (c *Config) Init() {}
func (c *Config) Poll() {}

func (c *Config) ReadLen(ch uint8) uint8 {
	if ch == 0 {
		return 2
	}
	return 1
}

func (c *Config) Read(ch uint8, buf *protocol.MsgBuffer) {
	if ch == 0 {
		_ = buf.Fill([]byte{uint8(len(c.sizes)), protocol.MaxMessage})
		return
	}
	// Out-of-range channels read as size 0.
	var size uint8
	if int(ch) <= len(c.sizes) {
		size = c.sizes[ch-1]
	}
	_ = buf.Fill([]byte{size})
}

func (c *Config) ReadDone(ch uint8) {}

func (c *Config) WriteCheck(ch uint8, data []byte) error {
	return core.ErrReadOnly
}

func (c *Config) Write(ch uint8, data []byte) {}
