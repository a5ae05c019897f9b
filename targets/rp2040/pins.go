//go:build rp2040

package main

import "machine"

// boardPins exposes a fixed set of GPIO lines through the port class.
// Pins are configured as outputs driven low; Get reads the pad, so an
// externally pulled line still reports its real level.
type boardPins struct {
	pins []machine.Pin
}

func newBoardPins(pins []machine.Pin) *boardPins {
	for _, p := range pins {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.Low()
	}
	return &boardPins{pins: pins}
}

func (b *boardPins) Count() int { return len(b.pins) }

func (b *boardPins) Get(pin uint8) bool {
	return int(pin) < len(b.pins) && b.pins[pin].Get()
}

func (b *boardPins) Set(pin uint8, level bool) {
	if int(pin) >= len(b.pins) {
		return
	}
	b.pins[pin].Set(level)
}
