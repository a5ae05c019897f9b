//go:build rp2040

package main

import (
	"machine"
	"time"
)

// uartWire adapts the bridge UART to the dispatcher's wire contract.
// RecvByte blocks on the receive FIFO; the main loop only dispatches
// when at least the opcode byte is already buffered.
type uartWire struct {
	uart *machine.UART
}

func (w *uartWire) SendByte(b byte) {
	_ = w.uart.WriteByte(b)
}

func (w *uartWire) RecvByte() byte {
	for w.uart.Buffered() == 0 {
		time.Sleep(10 * time.Microsecond)
	}
	b, err := w.uart.ReadByte()
	if err != nil {
		return 0
	}
	return b
}
