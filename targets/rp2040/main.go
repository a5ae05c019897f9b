//go:build rp2040

package main

import (
	"machine"
	"time"

	"owslave/core"
	"owslave/devices"
)

// Bus bridge UART. The master side talks through a USB-serial adapter
// wired to these pins.
const bridgeBaud = 115200

// GPIO lines exposed through the port class.
var portPins = []machine.Pin{machine.GP2, machine.GP3, machine.GP4, machine.GP5}

var faultCount uint32

func main() {
	// Disable the watchdog on boot to clear any previous state.
	err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})
	if err != nil {
		return
	}

	uart := machine.UART0
	err = uart.Configure(machine.UARTConfig{
		BaudRate: bridgeBaud,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	})
	if err != nil {
		fatalReset(err)
	}

	// AHT20 on I2C0, kept off the port pins above.
	err = machine.I2C0.Configure(machine.I2CConfig{
		Frequency: 100e3,
		SDA:       machine.GP8,
		SCL:       machine.GP9,
	})
	if err != nil {
		fatalReset(err)
	}

	presence, err := newPresencePulse(machine.GP6)
	if err != nil {
		fatalReset(err)
	}

	tbl, err := devices.BuildRegistry(
		newBoardPins(portPins),
		devices.NewAHT20Sensor(machine.I2C0),
	)
	if err != nil {
		fatalReset(err)
	}
	tbl.Registry.Init()

	wire := &uartWire{uart: uart}
	d := core.NewDispatcher(tbl.Registry, wire, fatalReset)

	// Announce ourselves once the table is up.
	presence.Pulse(480)

	for {
		// Recover from panics in the slice to keep the device on the bus.
		func() {
			defer func() {
				if r := recover(); r != nil {
					faultCount++
					drainUART(uart)
				}
			}()

			tbl.Registry.PollAll()
			announceAlerts(tbl, presence)

			if uart.Buffered() > 0 {
				if err := d.ServeOne(); err != nil {
					faultCount++
					drainUART(uart)
				}
			}
		}()

		time.Sleep(100 * time.Microsecond)
	}
}

// drainUART discards buffered bytes after a failed exchange so the next
// one starts on an opcode boundary.
func drainUART(uart *machine.UART) {
	for uart.Buffered() > 0 {
		_, _ = uart.ReadByte()
	}
}

// fatalReset is the dispatcher's fault handler: a corrupted exchange is
// unrecoverable in place, so reset through the watchdog and rejoin the
// bus clean.
func fatalReset(err error) {
	_ = machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 1})
	_ = machine.Watchdog.Start()
	for {
		time.Sleep(1 * time.Millisecond)
	}
}
