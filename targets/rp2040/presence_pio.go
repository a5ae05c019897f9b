//go:build rp2040

package main

import (
	"machine"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"
)

// The presence pulse drives the announce line low for a commanded
// number of microseconds and releases it, timed by PIO so the main
// loop's jitter never shortens the pulse.
//
// Command word: bits 0-31 hold the pulse width in microseconds.
//
// buildPresenceProgram assembles the pulse program using AssemblerV0.
func buildPresenceProgram() []uint16 {
	asm := rp2pio.AssemblerV0{SidesetBits: 0}
	return []uint16{
		// .wrap_target
		asm.Pull(false, true).Encode(),          // 0: pull block
		asm.Out(rp2pio.OutDestX, 32).Encode(),   // 1: out x, 32 (width in us)
		asm.Set(rp2pio.SetDestPins, 0).Encode(), // 2: set pins, 0 (drive low)
		// hold_loop:
		asm.Jmp(3, rp2pio.JmpXNZeroDec).Encode(), // 3: jmp x--, 3
		asm.Set(rp2pio.SetDestPins, 1).Encode(),  // 4: set pins, 1 (release)
		// .wrap
	}
}

const presencePIOOrigin = 0 // Load at offset 0 for correct jump addresses

type presencePulse struct {
	pio *rp2pio.PIO
	sm  rp2pio.StateMachine
	pin machine.Pin
}

func newPresencePulse(pin machine.Pin) (*presencePulse, error) {
	p := &presencePulse{
		pio: rp2pio.PIO0,
		pin: pin,
	}
	p.sm = p.pio.StateMachine(0)
	p.sm.TryClaim()

	program := buildPresenceProgram()
	offset, err := p.pio.AddProgram(program, presencePIOOrigin)
	if err != nil {
		return nil, err
	}

	p.pin.Configure(machine.PinConfig{Mode: p.pio.PinMode()})

	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetSetPins(p.pin, 1)
	cfg.SetOutShift(true, false, 32)
	cfg.SetWrap(offset+uint8(len(program))-1, offset)

	// 125MHz / 125 = 1MHz, so the hold loop counts microseconds.
	cfg.SetClkDivIntFrac(125, 0)

	p.sm.Init(offset, cfg)
	p.sm.SetPindirsConsecutive(p.pin, 1, true)
	p.sm.SetPinsConsecutive(p.pin, 1, true) // released = high
	p.sm.SetEnabled(true)

	return p, nil
}

// Pulse queues one presence pulse of the given width in microseconds.
func (p *presencePulse) Pulse(us uint32) {
	if p.sm.IsTxFIFOFull() {
		// A pulse is already queued; one announcement is enough.
		return
	}
	p.sm.TxPut(us)
}
